package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Callers match them with errors.Is; the wrapped
// message names the offending setting.
var (
	// ErrInvalidAppConfigs indicates invalid token or hashing settings
	// (for example, a missing sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listen address, timeouts,
	// body size or rate limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
