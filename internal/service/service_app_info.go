package service

import (
	"context"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
)

// appInfoService answers the health endpoint with values fixed at startup.
type appInfoService struct {
	version string
	backend string
}

func NewAppInfoService(cfg config.App, storageBackend string, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("version", cfg.Version).
		Str("storage", storageBackend).
		Msg("app info service created")

	return &appInfoService{version: cfg.Version, backend: storageBackend}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *appInfoService) StorageBackend(_ context.Context) string {
	return s.backend
}
