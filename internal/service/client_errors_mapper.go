// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/app"
)

// mapAdapterError adds the matching service error to the adapter's transport
// error. The adapter error stays in the chain, so errors.Is still matches
// adapter.ErrUnauthorized and errors.As still finds *adapter.ValidationError.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *adapter.ValidationError
	switch {
	case errors.As(err, &vErr):
		return err
	case errors.Is(err, adapter.ErrUnauthorized):
		return err
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrApplicationNotFound, err)
	}

	return err
}

// mapAuthError is mapAdapterError for the login and signup calls, where a 401
// means wrong credentials and a 400 may be the duplicate email.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *adapter.ValidationError
	switch {
	case errors.As(err, &vErr) && len(vErr.Details) == 0 && vErr.Message == app.MsgEmailAlreadyExists:
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return err
}
