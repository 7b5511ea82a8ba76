package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/service"
	"github.com/MKhiriev/go-study-buddy/internal/store"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
	"github.com/MKhiriev/go-study-buddy/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is ordered from the most to the least specific error, the
// first match decides both the status code and the public message.
var errorStatuses = []errorStatus{
	{validators.ErrEmptyName, http.StatusBadRequest},
	{validators.ErrNameTooLong, http.StatusBadRequest},
	{validators.ErrEmptyEmail, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrEmptyPassword, http.StatusBadRequest},
	{validators.ErrPasswordTooShort, http.StatusBadRequest},
	{validators.ErrEmptyToken, http.StatusBadRequest},
	{validators.ErrTextTooShort, http.StatusBadRequest},
	{validators.ErrNoFeaturesRequested, http.StatusBadRequest},
	{validators.ErrUnknownFeature, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrNoFileUploaded, http.StatusBadRequest},
	{ErrInvalidFeatures, http.StatusBadRequest},
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusForbidden},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrSessionNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	status, _ := resolveError(err)
	return status
}

// resolveError returns the status code for err and the message that is safe
// to show to the client. Unknown and server side errors are reported without
// details.
func resolveError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.status >= http.StatusInternalServerError {
				break
			}
			return e.status, e.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeServiceError logs err and answers with its mapped status as JSON.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, public := resolveError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, public, status)
}
