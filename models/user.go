package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	// ID is the opaque unique identifier of the user (UUID v7).
	ID string `json:"id"`

	// Email is the unique login of the user, always stored lowercased.
	Email string `json:"email"`

	// PasswordHash holds the bcrypt hash of the password.
	// It is populated only by lookups that need to verify credentials.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user without credential data.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
