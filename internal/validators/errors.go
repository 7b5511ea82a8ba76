package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name must be at most 100 characters")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrEmptyToken          = errors.New("token is required")
	ErrTextTooShort        = errors.New("text must be at least 30 characters")
	ErrNoFeaturesRequested = errors.New("at least one feature must be requested")
	ErrUnknownFeature      = errors.New("unknown feature requested")
)
