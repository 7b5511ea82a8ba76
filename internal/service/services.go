package service

import (
	"github.com/MKhiriev/go-study-buddy/internal/adapter"
	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/store"
)

type Services struct {
	AuthService    AuthService
	StudyService   StudyService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	inference adapter.InferenceAdapter,
	extractor FileExtractor,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.Backend(), logger)
	if err != nil {
		return nil, err
	}

	study := NewStudyService(storages.SessionRepository, inference, extractor, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		StudyService:   NewStudyValidationService().Wrap(study),
		AppInfoService: appInfo,
	}, nil
}
