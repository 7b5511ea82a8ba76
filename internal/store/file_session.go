package store

import (
	"context"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/models"
)

// SessionsFileName is the file holding study sessions inside the data directory.
const SessionsFileName = "sessions.json"

// sessionFileRepository is the flat-file implementation of
// [SessionRepository]. Sessions are kept in insertion order, oldest first.
type sessionFileRepository struct {
	file        *jsonFile[models.StudySession]
	maxSessions int
}

// NewSessionFileRepository constructs a [SessionRepository] stored at path
// that retains at most maxSessions sessions across all users.
// An empty path keeps sessions in memory only.
func NewSessionFileRepository(path string, maxSessions int, log *logger.Logger) SessionRepository {
	log = log.WithComponent("session-store")
	log.Debug().Str("path", path).Int("max_sessions", maxSessions).Msg("creating session file repository")
	return &sessionFileRepository{
		file:        newJSONFile[models.StudySession](path, false, log),
		maxSessions: maxSessions,
	}
}

func (r *sessionFileRepository) Append(ctx context.Context, session models.StudySession) (models.StudySession, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	sessions := append(r.file.load(), session)
	if r.maxSessions > 0 && len(sessions) > r.maxSessions {
		evicted := len(sessions) - r.maxSessions
		sessions = sessions[evicted:]
		logger.FromContext(ctx).Debug().Int("evicted", evicted).Msg("oldest sessions evicted")
	}
	r.file.save(sessions)

	return session, nil
}

func (r *sessionFileRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	sessions := r.file.load()
	result := make([]models.StudySession, 0)
	for i := len(sessions) - 1; i >= 0; i-- {
		if sessions[i].UserID != userID {
			continue
		}
		result = append(result, sessions[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *sessionFileRepository) Get(ctx context.Context, sessionID, userID string) (models.StudySession, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	for _, s := range r.file.load() {
		if s.ID == sessionID && s.UserID == userID {
			return s, nil
		}
	}
	return models.StudySession{}, ErrSessionNotFound
}
