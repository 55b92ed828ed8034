package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/listview"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

type clientApplicationService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientApplicationService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientApplicationService {
	return &clientApplicationService{adapter: serverAdapter, logger: logger}
}

func (c *clientApplicationService) List(ctx context.Context, query listview.Query) ([]models.Application, error) {
	apps, err := c.adapter.ListApplications(ctx, query.Params())
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return apps, nil
}

func (c *clientApplicationService) Get(ctx context.Context, id string) (models.Application, error) {
	app, err := c.adapter.GetApplication(ctx, id)
	if err != nil {
		return models.Application{}, mapAdapterError(err)
	}
	return app, nil
}

func (c *clientApplicationService) Create(ctx context.Context, req models.ApplicationRequest) (models.Application, models.ApplicationStats, error) {
	app, err := c.adapter.CreateApplication(ctx, req.Normalized())
	if err != nil {
		return models.Application{}, models.ApplicationStats{}, mapAdapterError(err)
	}

	stats, err := c.refreshStats(ctx)
	return app, stats, err
}

func (c *clientApplicationService) Update(ctx context.Context, id string, req models.ApplicationRequest) (models.Application, models.ApplicationStats, error) {
	app, err := c.adapter.UpdateApplication(ctx, id, req.Normalized())
	if err != nil {
		return models.Application{}, models.ApplicationStats{}, mapAdapterError(err)
	}

	stats, err := c.refreshStats(ctx)
	return app, stats, err
}

func (c *clientApplicationService) Delete(ctx context.Context, id string) (models.ApplicationStats, error) {
	if err := c.adapter.DeleteApplication(ctx, id); err != nil {
		return models.ApplicationStats{}, mapAdapterError(err)
	}

	return c.refreshStats(ctx)
}

func (c *clientApplicationService) Stats(ctx context.Context) (models.ApplicationStats, error) {
	stats, err := c.adapter.GetStats(ctx)
	if err != nil {
		return models.ApplicationStats{}, mapAdapterError(err)
	}
	return stats, nil
}

// refreshStats fetches the stats after a successful write. The write itself
// already happened, so a failure here is reported with ErrStatsRefresh.
func (c *clientApplicationService) refreshStats(ctx context.Context) (models.ApplicationStats, error) {
	stats, err := c.Stats(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*clientApplicationService.refreshStats").Msg("stats refresh failed")
		return models.ApplicationStats{}, fmt.Errorf("%w: %w", ErrStatsRefresh, err)
	}
	return stats, nil
}
