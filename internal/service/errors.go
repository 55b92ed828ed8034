package service

import "errors"

var (
	ErrEmailAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrStatsRefresh = errors.New("saved, but stats could not be refreshed")
)
