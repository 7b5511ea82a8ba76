package store

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/models"
)

// UsersFileName is the file holding user records inside the data directory.
const UsersFileName = "users.json"

// userFileRepository is the flat-file implementation of [UserRepository].
// Every write is read back and verified.
type userFileRepository struct {
	file *jsonFile[models.User]
}

// NewUserFileRepository constructs a [UserRepository] stored at path.
// An empty path keeps users in memory only.
func NewUserFileRepository(path string, log *logger.Logger) UserRepository {
	log = log.WithComponent("user-store")
	log.Debug().Str("path", path).Msg("creating user file repository")
	return &userFileRepository{file: newJSONFile[models.User](path, true, log)}
}

func (r *userFileRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	users := r.file.load()
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	users = append(users, user)
	r.file.save(users)

	logger.FromContext(ctx).Debug().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (r *userFileRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	for _, u := range r.file.load() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *userFileRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	for _, u := range r.file.load() {
		if u.ID == userID {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *userFileRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	users := r.file.load()
	for i := range users {
		if users[i].ID == userID {
			at := at
			users[i].LastLogin = &at
			r.file.save(users)
			return nil
		}
	}
	return ErrNoUserWasFound
}
