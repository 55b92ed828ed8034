package service

import (
	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
)

type ClientServices struct {
	AuthService        ClientAuthService
	ApplicationService ClientApplicationService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:        NewClientAuthService(storages.SessionRepository, serverAdapter, logger),
		ApplicationService: NewClientApplicationService(serverAdapter, logger),
	}
}
