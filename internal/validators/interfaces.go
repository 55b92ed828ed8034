// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of request rules before they reach the service layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation, which is
//     how partial updates validate only the fields they carry.
//
// Usage patterns:
//  1. Construct a Validator once and inject it into handlers.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Match failures with errors.Is(err, ErrValidationFailed) and read the
//     field details from *ValidationError.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
