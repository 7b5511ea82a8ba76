package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-buddy/internal/validators"
	"github.com/MKhiriev/go-study-buddy/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerStudyService struct {
	processFn     func(ctx context.Context, input models.StudyInput) (models.StudySession, error)
	processFileFn func(ctx context.Context, input models.FileInput) (models.StudySession, error)
	historyFn     func(ctx context.Context, userID string, limit int) ([]models.StudySession, error)
	sessionFn     func(ctx context.Context, sessionID, userID string) (models.StudySession, error)
	statsFn       func(ctx context.Context, userID string) (models.Stats, error)
}

func (m *mockInnerStudyService) Process(ctx context.Context, input models.StudyInput) (models.StudySession, error) {
	if m.processFn != nil {
		return m.processFn(ctx, input)
	}
	return models.StudySession{}, nil
}
func (m *mockInnerStudyService) ProcessFile(ctx context.Context, input models.FileInput) (models.StudySession, error) {
	if m.processFileFn != nil {
		return m.processFileFn(ctx, input)
	}
	return models.StudySession{}, nil
}
func (m *mockInnerStudyService) History(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID, limit)
	}
	return nil, nil
}
func (m *mockInnerStudyService) Session(ctx context.Context, sessionID, userID string) (models.StudySession, error) {
	if m.sessionFn != nil {
		return m.sessionFn(ctx, sessionID, userID)
	}
	return models.StudySession{}, nil
}
func (m *mockInnerStudyService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, userID)
	}
	return models.Stats{}, nil
}

func newValidatedStudy(inner StudyService) StudyService {
	return NewStudyValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// Process
// ─────────────────────────────────────────────

func TestStudyValidation_Process_Valid_CallsInner(t *testing.T) {
	called := false
	svc := newValidatedStudy(&mockInnerStudyService{
		processFn: func(_ context.Context, input models.StudyInput) (models.StudySession, error) {
			called = true
			return models.StudySession{ID: "s1"}, nil
		},
	})

	got, err := svc.Process(context.Background(), models.StudyInput{
		UserID: "u1", Text: studyText, Features: []models.Feature{models.FeatureSummary},
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "s1", got.ID)
}

func TestStudyValidation_Process_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input models.StudyInput
		want  error
	}{
		{name: "short text", input: models.StudyInput{Text: "short", Features: models.AllFeatures}, want: ErrTextTooShort},
		{name: "no features", input: models.StudyInput{Text: studyText}, want: ErrNoFeaturesRequested},
		{name: "unknown feature", input: models.StudyInput{Text: studyText, Features: []models.Feature{"essay"}}, want: validators.ErrUnknownFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newValidatedStudy(&mockInnerStudyService{
				processFn: func(context.Context, models.StudyInput) (models.StudySession, error) {
					t.Fatal("inner service must not be called")
					return models.StudySession{}, nil
				},
			})

			_, err := svc.Process(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ─────────────────────────────────────────────
// ProcessFile / Session / passthrough
// ─────────────────────────────────────────────

func TestStudyValidation_ProcessFile(t *testing.T) {
	calls := 0
	svc := newValidatedStudy(&mockInnerStudyService{
		processFileFn: func(context.Context, models.FileInput) (models.StudySession, error) {
			calls++
			return models.StudySession{}, nil
		},
	})

	_, err := svc.ProcessFile(context.Background(), models.FileInput{UserID: "u1"})
	require.NoError(t, err, "missing features default later")

	_, err = svc.ProcessFile(context.Background(), models.FileInput{UserID: "u1", Features: []models.Feature{models.FeatureQuiz}})
	require.NoError(t, err)

	_, err = svc.ProcessFile(context.Background(), models.FileInput{UserID: "u1", Features: []models.Feature{"poem"}})
	assert.ErrorIs(t, err, validators.ErrUnknownFeature)

	assert.Equal(t, 2, calls)
}

func TestStudyValidation_Session_EmptyID(t *testing.T) {
	svc := newValidatedStudy(&mockInnerStudyService{})

	_, err := svc.Session(context.Background(), "", "u1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestStudyValidation_Passthrough(t *testing.T) {
	svc := newValidatedStudy(&mockInnerStudyService{
		historyFn: func(_ context.Context, userID string, limit int) ([]models.StudySession, error) {
			return []models.StudySession{{ID: userID}}, nil
		},
		statsFn: func(context.Context, string) (models.Stats, error) {
			return models.Stats{TotalSessions: 7}, nil
		},
	})

	history, err := svc.History(context.Background(), "u1", 5)
	require.NoError(t, err)
	assert.Equal(t, "u1", history[0].ID)

	stats, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalSessions)
}
