// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-job-tracker/internal/adapter"
	"github.com/MKhiriev/go-job-tracker/internal/service"
)

var errNoServices = errors.New("client services are not provided")

// humanizeError turns a service error into a line for the toast.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var vErr *adapter.ValidationError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return "User with this email already exists"
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, service.ErrStatsRefresh):
		return "Saved, but the counters could not be refreshed"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many requests, please wait a moment"
	case errors.Is(err, adapter.ErrNotFound):
		return "The application no longer exists"
	case errors.Is(err, adapter.ErrServerError):
		return "The server failed to process the request"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}

// fieldErrors extracts the per-field messages of a 400 response. It returns
// nil for any other error.
func fieldErrors(err error, fields ...string) map[string]string {
	var vErr *adapter.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Details) == 0 {
		return nil
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if msg := vErr.FieldMessage(f); msg != "" {
			out[f] = msg
		}
	}
	return out
}

// isUnauthorized reports whether err means the token is no longer accepted.
func isUnauthorized(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}
