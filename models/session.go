package models

import "time"

// Session is the login state the terminal client keeps on disk.
type Session struct {
	UserID  string
	Email   string
	Token   string
	SavedAt time.Time
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}
