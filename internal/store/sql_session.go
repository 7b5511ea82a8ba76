package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/models"
)

var sessionColumns = []string{
	"id", "user_id", "original_text", "full_text_length", "results",
	"features", "created_at", "word_count", "input_type", "file_name",
}

type sessionRepository struct {
	db          *DB
	maxSessions int
	logger      *logger.Logger
}

// NewSessionRepository constructs a SQL-backed [SessionRepository] that
// retains at most maxSessions rows across all users.
func NewSessionRepository(db *DB, maxSessions int, log *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:          db,
		maxSessions: maxSessions,
		logger:      log.WithComponent("session-repository"),
	}
}

// Append inserts session and evicts the oldest rows beyond the cap in the
// same transaction.
func (s *sessionRepository) Append(ctx context.Context, session models.StudySession) (models.StudySession, error) {
	results, err := json.Marshal(session.Results)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("error encoding results: %w", err)
	}
	features, err := json.Marshal(session.Features)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("error encoding features: %w", err)
	}

	insert, insertArgs, err := s.db.builder.
		Insert(models.StudySession{}.TableName()).
		Columns(sessionColumns...).
		Values(
			session.ID, session.UserID, session.OriginalText, session.FullTextLength, string(results),
			string(features), session.Timestamp, session.WordCount, string(session.InputType), session.FileName,
		).
		ToSql()
	if err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insert, insertArgs...); err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if s.maxSessions > 0 {
		evict, evictArgs, err := s.db.builder.
			Delete(models.StudySession{}.TableName()).
			Where(sq.Expr(
				"id NOT IN (SELECT id FROM study_sessions ORDER BY created_at DESC, id DESC LIMIT ?)",
				s.maxSessions,
			)).
			ToSql()
		if err != nil {
			return models.StudySession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, evict, evictArgs...)
		if err != nil {
			return models.StudySession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			logger.FromContext(ctx).Debug().Int64("evicted", n).Msg("oldest sessions evicted")
		}
	}

	if err = tx.Commit(); err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return session, nil
}

func (s *sessionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.StudySession, error) {
	builder := s.db.builder.
		Select(sessionColumns...).
		From(models.StudySession{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.StudySession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

func (s *sessionRepository) Get(ctx context.Context, sessionID, userID string) (models.StudySession, error) {
	query, args, err := s.db.builder.
		Select(sessionColumns...).
		From(models.StudySession{}.TableName()).
		Where(sq.Eq{"id": sessionID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanSession(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StudySession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.StudySession, error) {
	var (
		session           models.StudySession
		results, features string
		inputType         string
	)
	err := row.Scan(
		&session.ID, &session.UserID, &session.OriginalText, &session.FullTextLength, &results,
		&features, &session.Timestamp, &session.WordCount, &inputType, &session.FileName,
	)
	if err != nil {
		return models.StudySession{}, err
	}

	if err = json.Unmarshal([]byte(results), &session.Results); err != nil {
		return models.StudySession{}, fmt.Errorf("error decoding results: %w", err)
	}
	if err = json.Unmarshal([]byte(features), &session.Features); err != nil {
		return models.StudySession{}, fmt.Errorf("error decoding features: %w", err)
	}
	session.InputType = models.InputType(inputType)

	return session, nil
}
