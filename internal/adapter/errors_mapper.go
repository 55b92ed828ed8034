package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	switch {
	case code == http.StatusBadRequest:
		var body models.ErrorResponse
		_ = json.Unmarshal(resp.Body(), &body)
		return &ValidationError{Message: msg, Details: body.Details}
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerError, msg)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedCode, code, msg)
	}
}

// errorMessage extracts the "error" field of a JSON error body and falls back
// to the raw body or the status text.
func errorMessage(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
