package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/models"
)

// healthStatusOK is the status reported by a running server.
const healthStatusOK = "OK"

type appInfoService struct {
	appVersion  string
	environment string
}

func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:      healthStatusOK,
		Timestamp:   time.Now().UTC(),
		Environment: s.environment,
		Version:     s.appVersion,
	}
}
