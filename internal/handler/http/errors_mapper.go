package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrEmailAlreadyExists:      {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	service.ErrNoFieldsToUpdate:        {http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrUserNotFound:            {http.StatusNotFound, app.MsgUserNotFound},
	service.ErrApplicationNotFound:     {http.StatusNotFound, app.MsgApplicationNotFound},
}

func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError answers a failed service call. Validation errors carry
// their field details; unexpected errors are logged and hidden behind a
// generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgValidationFailed, Details: vErr.Details}, http.StatusBadRequest)
		return
	}

	status, msg := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	utils.WriteError(w, msg, status)
}
