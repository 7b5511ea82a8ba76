package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-buddy/internal/adapter"
	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/extractor"
	"github.com/MKhiriev/go-study-buddy/internal/handler"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/server"
	"github.com/MKhiriev/go-study-buddy/internal/service"
	"github.com/MKhiriev/go-study-buddy/internal/store"
	"github.com/MKhiriev/go-study-buddy/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("study-buddy-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.UsesDefaultSignKey() {
		log.Warn().Msg("using the default token sign key, set APP_TOKEN_SIGN_KEY in production")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	inference := adapter.NewHTTPInferenceAdapter(cfg.Adapter, log)
	fileExtractor := extractor.New(inference, log)

	services, err := service.NewServices(storages, inference, fileExtractor, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("version", cfg.App.Version).
		Str("storage", storages.Backend()).
		Bool("inference", inference.Enabled()).
		Msg("study buddy server starting")

	srv.RunServer()
}
