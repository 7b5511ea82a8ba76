package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-buddy/internal/validators"
	"github.com/MKhiriev/go-study-buddy/models"
)

// StudyValidationService checks study requests before they reach the inner
// StudyService.
type StudyValidationService struct {
	inner     StudyService
	validator validators.Validator
}

func NewStudyValidationService() StudyServiceWrapper {
	return &StudyValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *StudyValidationService) Process(ctx context.Context, input models.StudyInput) (models.StudySession, error) {
	req := models.ProcessRequest{Text: input.Text, Features: input.Features}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Process(ctx, input)
}

// ProcessFile validates explicitly requested features only. The extracted
// text is checked by the inner service once it exists.
func (v *StudyValidationService) ProcessFile(ctx context.Context, input models.FileInput) (models.StudySession, error) {
	if len(input.Features) > 0 {
		req := models.ProcessRequest{Features: input.Features}
		if err := v.validator.Validate(ctx, req, "Features"); err != nil {
			return models.StudySession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.ProcessFile(ctx, input)
}

func (v *StudyValidationService) History(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	return v.inner.History(ctx, userID, limit)
}

func (v *StudyValidationService) Session(ctx context.Context, sessionID, userID string) (models.StudySession, error) {
	if sessionID == "" {
		return models.StudySession{}, ErrInvalidDataProvided
	}
	return v.inner.Session(ctx, sessionID, userID)
}

func (v *StudyValidationService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	return v.inner.Stats(ctx, userID)
}

func (v *StudyValidationService) Wrap(wrapped StudyService) StudyService {
	v.inner = wrapped
	return v
}
