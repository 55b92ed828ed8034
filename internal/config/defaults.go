package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultTokenIssuer        = "go-job-tracker"
	DefaultTokenDuration      = 7 * 24 * time.Hour
	DefaultPasswordHashCost   = 12
	DefaultEnvironment        = "development"
	DefaultVersion            = "1.0.0"
	DefaultLogLevel           = "debug"
	DefaultHTTPAddress        = "localhost:5000"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultCORSAllowedOrigin  = "http://localhost:3000"
	DefaultMaxBodyBytes       = 10 << 20
	DefaultAPIRateLimit       = 1000
	DefaultAuthRateLimit      = 50
	DefaultRateLimitWindow    = 15 * time.Minute
	DefaultAdapterHTTPAddress = "http://localhost:5000"
	DefaultAdapterTimeout     = 10 * time.Second
	DefaultClientDBFileName   = "go-job-tracker-client.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			Environment:      DefaultEnvironment,
			Version:          DefaultVersion,
			LogLevel:         DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			ShutdownTimeout:    DefaultShutdownTimeout,
			CORSAllowedOrigins: []string{DefaultCORSAllowedOrigin},
			MaxBodyBytes:       DefaultMaxBodyBytes,
			RateLimit: RateLimit{
				API:    DefaultAPIRateLimit,
				Auth:   DefaultAuthRateLimit,
				Window: DefaultRateLimitWindow,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		ClientStorage: ClientStorage{
			DB: ClientDB{DSN: defaultClientDBPath()},
		},
	}
}

// defaultClientDBPath places the client database next to the executable.
func defaultClientDBPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DefaultClientDBFileName
	}
	return filepath.Join(filepath.Dir(execPath), DefaultClientDBFileName)
}
