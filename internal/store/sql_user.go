package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/models"
)

var userColumns = []string{"id", "email", "password_hash", "name", "created_at", "last_login"}

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a SQL-backed [UserRepository].
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: log.WithComponent("user-repository"),
	}
}

func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := u.db.builder.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, strings.ToLower(user.Email), user.PasswordHash, user.Name, user.CreatedAt, user.LastLogin).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = u.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: unexpected DB error: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (u *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return u.findOne(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (u *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return u.findOne(ctx, sq.Eq{"id": userID})
}

func (u *userRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	query, args, err := u.db.builder.
		Update(models.User{}.TableName()).
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

func (u *userRepository) findOne(ctx context.Context, where sq.Eq) (models.User, error) {
	query, args, err := u.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user      models.User
		lastLogin sql.NullTime
	)
	err = u.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedAt, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.findOne").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: unexpected DB error: %w", ErrScanningRow, err)
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	return user, nil
}
