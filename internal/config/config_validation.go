// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"

	"golang.org/x/crypto/bcrypt"
)

// minProductionSignKeyLen is the shortest sign key accepted in production.
const minProductionSignKeyLen = 16

// validate checks that the merged [StructuredConfig] satisfies everything the
// server needs at startup. Client-only sections are not checked here.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case app.Environment == "production" && len(app.TokenSignKey) < minProductionSignKeyLen:
		return fmt.Errorf("%w: token sign key must be at least %d bytes in production", ErrInvalidAppConfigs, minProductionSignKeyLen)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case app.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case app.PasswordHashCost < bcrypt.MinCost || app.PasswordHashCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	srv := cfg.Server
	if _, _, err := net.SplitHostPort(srv.HTTPAddress); err != nil {
		return fmt.Errorf("%w: http address %q: %v", ErrInvalidServerConfigs, srv.HTTPAddress, err)
	}
	switch {
	case srv.RequestTimeout <= 0, srv.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	case srv.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs)
	case srv.RateLimit.API <= 0, srv.RateLimit.Auth <= 0, srv.RateLimit.Window <= 0:
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
