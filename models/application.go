package models

import (
	"strings"
	"time"
)

// Status is the pipeline stage of a job application.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffered   Status = "offered"
	StatusRejected  Status = "rejected"
)

// Statuses lists every valid status in pipeline order.
var Statuses = []Status{StatusApplied, StatusInterview, StatusOffered, StatusRejected}

// IsValid reports whether s is one of [Statuses].
func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// ParseStatus returns the status named by s and whether it is known.
// Matching is exact apart from surrounding spaces: "Interview" is unknown.
func ParseStatus(s string) (Status, bool) {
	status := Status(strings.TrimSpace(s))
	return status, status.IsValid()
}

func (s Status) String() string {
	return string(s)
}

// Application is a single job application owned by a user.
// Every read and write of an Application is scoped by (ID, UserID).
type Application struct {
	// ID is the opaque unique identifier of the record (UUID v7).
	ID string `json:"id"`

	// UserID references the owning [User].
	UserID string `json:"user_id"`

	// Company is the employer name, 1..255 characters.
	Company string `json:"company"`

	// JobTitle is the position applied for, 1..255 characters.
	JobTitle string `json:"job_title"`

	// ApplicationDate is the calendar date the application was sent.
	ApplicationDate Date `json:"application_date"`

	// Status is the current pipeline stage.
	Status Status `json:"status"`

	// Notes holds optional free text, up to 5000 characters.
	Notes *string `json:"notes"`

	// CreatedAt is the timestamp when the record was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Application model.
func (a Application) TableName() string {
	return "job_applications"
}

// ApplicationUpdate describes a partial update of an [Application].
// A nil field is left unchanged.
type ApplicationUpdate struct {
	Company         *string
	JobTitle        *string
	ApplicationDate *Date
	Status          *Status
	Notes           *string
}

// IsEmpty reports whether the update carries no fields.
func (u ApplicationUpdate) IsEmpty() bool {
	return u.Company == nil &&
		u.JobTitle == nil &&
		u.ApplicationDate == nil &&
		u.Status == nil &&
		u.Notes == nil
}

// Apply returns a copy of app with every non-nil field of u written over it.
func (u ApplicationUpdate) Apply(app Application) Application {
	if u.Company != nil {
		app.Company = *u.Company
	}
	if u.JobTitle != nil {
		app.JobTitle = *u.JobTitle
	}
	if u.ApplicationDate != nil {
		app.ApplicationDate = *u.ApplicationDate
	}
	if u.Status != nil {
		app.Status = *u.Status
	}
	if u.Notes != nil {
		notes := *u.Notes
		app.Notes = &notes
	}
	return app
}
