// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// job tracker server handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client matches some of them to recognise a
// specific failure behind a generic status code.
package app

const (
	// MsgInvalidRequestBody is returned when the request body is not valid JSON.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgValidationFailed accompanies a list of field errors.
	MsgValidationFailed = "Validation failed"

	// MsgNoFieldsToUpdate is returned when an update body carries no known field.
	MsgNoFieldsToUpdate = "No fields to update"

	// MsgEmailAlreadyExists is returned on signup with a taken email. The
	// status is 400, so the client tells it apart by this text.
	MsgEmailAlreadyExists = "User with this email already exists"

	// MsgInvalidCredentials is returned for both an unknown email and a
	// wrong password.
	MsgInvalidCredentials = "Invalid email or password"

	MsgAccessTokenRequired     = "Access token required"
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	MsgUserNotFound        = "User not found"
	MsgApplicationNotFound = "Application not found"

	MsgAPIEndpointNotFound = "API endpoint not found"
	MsgNotFound            = "Not found"

	// MsgInternalServerError hides the cause of any unexpected failure.
	MsgInternalServerError = "Internal server error"

	MsgTooManyRequests     = "Too many requests from this IP, please try again later."
	MsgTooManyAuthRequests = "Too many authentication attempts, please try again later."

	MsgUserCreated        = "User created successfully"
	MsgLoginSuccessful    = "Login successful"
	MsgApplicationCreated = "Application created successfully"
	MsgApplicationUpdated = "Application updated successfully"
	MsgApplicationDeleted = "Application deleted successfully"

	// MsgAPIName is the greeting of GET /.
	MsgAPIName = "Job Application Tracker API"
)
