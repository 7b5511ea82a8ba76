package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-study-buddy/internal/service"
	"github.com/MKhiriev/go-study-buddy/internal/store"
	"github.com/MKhiriev/go-study-buddy/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"wrapped validator", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTextTooShort), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"malformed header", ErrInvalidAuthorizationHeader, http.StatusForbidden},
		{"duplicate email", fmt.Errorf("x: %w", store.ErrEmailAlreadyExists), http.StatusConflict},
		{"missing session", store.ErrSessionNotFound, http.StatusNotFound},
		{"missing user", store.ErrNoUserWasFound, http.StatusNotFound},
		{"upload too large", ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
		{"sql failure", fmt.Errorf("%w: timeout", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestResolveError_PublicMessage(t *testing.T) {
	status, msg := resolveError(fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, validators.ErrInvalidEmail.Error(), msg)

	status, msg = resolveError(fmt.Errorf("%w: secret table name", store.ErrScanningRow))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), msg)
}
