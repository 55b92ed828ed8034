package models

import "time"

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// ProfileResponse is returned by GET /api/auth/profile.
type ProfileResponse struct {
	User User `json:"user"`
}

// ApplicationsResponse carries a filtered list of applications.
// Total is the length of Applications.
type ApplicationsResponse struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
}

// ApplicationResponse carries a single application, with a message on writes.
type ApplicationResponse struct {
	Message     string      `json:"message,omitempty"`
	Application Application `json:"application"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationDetail names a rejected field and the reason.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
