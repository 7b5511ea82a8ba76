package handler

import (
	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/handler/http"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Server, cfg.Storage.Files.UploadDir, logger),
	}, nil
}
