package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-buddy/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTextTooShort        = validators.ErrTextTooShort
	ErrNoFeaturesRequested = validators.ErrNoFeaturesRequested

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoUserID              = errors.New("no user ID was given")
)
