package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req = req.Normalized()

	if err := h.validator.Validate(ctx, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgUserCreated,
		User:    user.Public(),
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req = req.Normalized()

	if err := h.validator.Validate(ctx, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user logged in")
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSuccessful,
		User:    user.Public(),
		Token:   token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: user.Public()}, http.StatusOK)
}
