package validators

import (
	"errors"

	"github.com/MKhiriev/go-job-tracker/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is matched by every [*ValidationError].
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError lists the rejected fields of a request in declaration order.
type ValidationError struct {
	Details []models.ValidationDetail
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + e.Details[0].Field + ": " + e.Details[0].Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
