package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// decodeJSON reads the request body into dst. On failure it writes the 400
// (or 413 for an oversized body) itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteError(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return false
		}

		logger.FromRequest(r).Debug().Err(err).Msg("invalid json body")
		utils.WriteError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return false
	}
	return true
}

// userIDFromRequest returns the id the auth middleware stored in the context.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Str("path", r.URL.Path).Send()
		utils.WriteError(w, app.MsgAccessTokenRequired, http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
