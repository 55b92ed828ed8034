package config

import (
	"fmt"
)

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	// App carries the log level and version shown by the client.
	App App
	// Adapter contains the API base URL and request timeout.
	Adapter Adapter
	// Storage contains the local session database settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the same sources as [GetStructuredConfig] but validates only the
// sections the client runtime uses, so no server secrets are required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.ClientStorage,
	}

	return clientCfg, clientCfg.validate()
}
