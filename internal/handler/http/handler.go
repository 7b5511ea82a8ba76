package http

import (
	"time"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigin  string
	requestTimeout time.Duration
	maxUploadSize  int64
	uploadDir      string

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, uploadDir string, logger *logger.Logger) *Handler {
	logger.Info().
		Str("allowed_origin", server.AllowedOrigin).
		Int64("max_upload_size", server.MaxUploadSize).
		Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigin:  server.AllowedOrigin,
		requestTimeout: server.RequestTimeout,
		maxUploadSize:  server.MaxUploadSize,
		uploadDir:      uploadDir,
		logger:         logger,
	}
}
