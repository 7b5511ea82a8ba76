package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
)

const (
	BackendSQL    = "sql"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Storages bundles the repositories used by the service layer.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	backend string
	db      *DB
}

// NewStorages selects a backend from cfg: a database when a DSN is set,
// process memory when InMemory is set, and JSON files in DataDir otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting storage: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("error migrating storage: %w", err)
		}

		log.Info().Str("backend", BackendSQL).Str("driver", db.Driver()).Msg("storage ready")
		return &Storages{
			UserRepository:    NewUserRepository(db, log),
			SessionRepository: NewSessionRepository(db, cfg.MaxSessions, log),
			backend:           BackendSQL,
			db:                db,
		}, nil
	}

	var usersPath, sessionsPath string
	backend := BackendMemory
	if !cfg.Files.InMemory {
		usersPath = filepath.Join(cfg.Files.DataDir, UsersFileName)
		sessionsPath = filepath.Join(cfg.Files.DataDir, SessionsFileName)
		backend = BackendFile
	}

	log.Info().Str("backend", backend).Str("data_dir", cfg.Files.DataDir).Msg("storage ready")
	return &Storages{
		UserRepository:    NewUserFileRepository(usersPath, log),
		SessionRepository: NewSessionFileRepository(sessionsPath, cfg.MaxSessions, log),
		backend:           backend,
	}, nil
}

// Backend names the active backend: "sql", "file" or "memory".
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
