package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/config"
)

// ── NewAppInfoService ──

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		wantErr error
	}{
		{name: "version set", cfg: config.App{Version: "1.0.0", Environment: "development"}},
		{name: "environment may be empty", cfg: config.App{Version: "1.0.0"}},
		{name: "missing version", cfg: config.App{Environment: "production"}, wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

// ── GetAppVersion ──

func TestGetAppVersion(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"})
	require.NoError(t, err)
	svc2, err := NewAppInfoService(config.App{Version: "2.3.4"})
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, "1.0.0", svc1.GetAppVersion(ctx))
	assert.Equal(t, "2.3.4", svc2.GetAppVersion(ctx))
	assert.Equal(t, svc1.GetAppVersion(ctx), svc1.GetAppVersion(ctx))
}

// ── Health ──

func TestHealth(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.0", Environment: "staging"})
	require.NoError(t, err)

	before := time.Now().UTC()
	got := svc.Health(context.Background())

	assert.Equal(t, "OK", got.Status)
	assert.Equal(t, "staging", got.Environment)
	assert.Equal(t, "1.2.0", got.Version)
	assert.Equal(t, time.UTC, got.Timestamp.Location())
	assert.WithinDuration(t, before, got.Timestamp, time.Second)
}
