package http

import (
	"context"

	"github.com/MKhiriev/go-study-buddy/models"
)

type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	verifyFn     func(ctx context.Context, tokenString string) (models.User, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockAuthService) Verify(ctx context.Context, tokenString string) (models.User, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, tokenString)
	}
	return models.User{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

type mockStudyService struct {
	processFn     func(ctx context.Context, input models.StudyInput) (models.StudySession, error)
	processFileFn func(ctx context.Context, input models.FileInput) (models.StudySession, error)
	historyFn     func(ctx context.Context, userID string, limit int) ([]models.StudySession, error)
	sessionFn     func(ctx context.Context, sessionID, userID string) (models.StudySession, error)
	statsFn       func(ctx context.Context, userID string) (models.Stats, error)
}

func (m *mockStudyService) Process(ctx context.Context, input models.StudyInput) (models.StudySession, error) {
	if m.processFn != nil {
		return m.processFn(ctx, input)
	}
	return models.StudySession{}, nil
}

func (m *mockStudyService) ProcessFile(ctx context.Context, input models.FileInput) (models.StudySession, error) {
	if m.processFileFn != nil {
		return m.processFileFn(ctx, input)
	}
	return models.StudySession{}, nil
}

func (m *mockStudyService) History(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockStudyService) Session(ctx context.Context, sessionID, userID string) (models.StudySession, error) {
	if m.sessionFn != nil {
		return m.sessionFn(ctx, sessionID, userID)
	}
	return models.StudySession{}, nil
}

func (m *mockStudyService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, userID)
	}
	return models.Stats{}, nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
	storage string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) StorageBackend(_ context.Context) string {
	return m.storage
}
