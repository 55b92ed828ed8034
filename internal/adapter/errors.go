package adapter

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
	ErrServerError     = errors.New("server error")
	ErrUnexpectedCode  = errors.New("unexpected status code")

	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)

// ValidationError is returned for a 400 response. Message is the server's
// error text; Details lists the rejected fields, if any.
type ValidationError struct {
	Message string
	Details []models.ValidationDetail
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Field+": "+d.Message)
	}
	return e.Message + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

// FieldMessage returns the message for field, or "" if the field was accepted.
func (e *ValidationError) FieldMessage(field string) string {
	for _, d := range e.Details {
		if d.Field == field {
			return d.Message
		}
	}
	return ""
}
