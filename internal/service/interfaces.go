package service

import (
	"context"

	"github.com/MKhiriev/go-study-buddy/models"
)

// AuthService registers and authenticates users and issues their tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	// Verify resolves a token to the user it was issued for.
	Verify(ctx context.Context, tokenString string) (models.User, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StudyService turns texts into study sessions and reads them back.
type StudyService interface {
	Process(ctx context.Context, input models.StudyInput) (models.StudySession, error)
	// ProcessFile extracts text from an uploaded file and processes it like
	// a text submission. The file at input.Path is not removed.
	ProcessFile(ctx context.Context, input models.FileInput) (models.StudySession, error)
	History(ctx context.Context, userID string, limit int) ([]models.StudySession, error)
	Session(ctx context.Context, sessionID, userID string) (models.StudySession, error)
	Stats(ctx context.Context, userID string) (models.Stats, error)
}

// AppInfoService reports build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// StorageBackend names the active persistence backend.
	StorageBackend(ctx context.Context) string
}

// FileExtractor turns a stored upload into text.
type FileExtractor interface {
	Extract(ctx context.Context, path, fileName, declaredType string) (models.Extraction, error)
}

// StudyServiceWrapper defines middleware composition for StudyService.
// Implementations wrap an existing StudyService to add behavior such as
// validation.
type StudyServiceWrapper interface {
	Wrap(StudyService) StudyService
}
