package service

import (
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

type Services struct {
	AuthService        AuthService
	ApplicationService ApplicationService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()

	appInfo, err := NewAppInfoService(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, ids, cfg, logger),
		ApplicationService: NewApplicationService(storages.ApplicationRepository, ids, logger),
		AppInfoService:     appInfo,
	}, nil
}
