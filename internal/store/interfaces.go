package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-buddy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository stores accounts. Emails are compared case-insensitively.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// SessionRepository stores study sessions with a global retention cap.
type SessionRepository interface {
	// Append stores session and evicts the oldest sessions beyond the cap.
	Append(ctx context.Context, session models.StudySession) (models.StudySession, error)
	// ListByUser returns the user's sessions most-recent-first. limit <= 0
	// returns all of them.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.StudySession, error)
	// Get returns [ErrSessionNotFound] when the session is missing or owned
	// by someone else.
	Get(ctx context.Context, sessionID, userID string) (models.StudySession, error)
}
