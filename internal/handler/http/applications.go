package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := models.NewApplicationFilter(
		q.Get("status"),
		q.Get("dateFrom"),
		q.Get("dateTo"),
		q.Get("sortBy"),
		q.Get("sortOrder"),
	)

	apps, err := h.services.ApplicationService.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	utils.WriteJSON(w, models.ApplicationsResponse{Applications: apps, Total: len(apps)}, http.StatusOK)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.services.ApplicationService.GetStats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	application, err := h.services.ApplicationService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ApplicationResponse{Application: application}, http.StatusOK)
}

func (h *Handler) createApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req = req.Normalized()

	if err := h.validator.Validate(ctx, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	newApp, err := req.ToApplication(userID)
	if err != nil {
		writeServiceError(w, r, dateError(err))
		return
	}

	created, err := h.services.ApplicationService.Create(ctx, userID, newApp)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("application_id", created.ID).Msg("application created")
	utils.WriteJSON(w, models.ApplicationResponse{Message: app.MsgApplicationCreated, Application: created}, http.StatusCreated)
}

// updateApplication serves both PUT and PATCH. Only the fields present in the
// body are validated and applied.
func (h *Handler) updateApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req = req.Normalized()

	fields := req.PresentFields()
	if len(fields) == 0 {
		utils.WriteError(w, app.MsgNoFieldsToUpdate, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req, fields...); err != nil {
		writeServiceError(w, r, err)
		return
	}

	update, err := req.ToUpdate()
	if err != nil {
		writeServiceError(w, r, dateError(err))
		return
	}

	updated, err := h.services.ApplicationService.Update(ctx, chi.URLParam(r, "id"), userID, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ApplicationResponse{Message: app.MsgApplicationUpdated, Application: updated}, http.StatusOK)
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.ApplicationService.Delete(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("application_id", deleted.ID).Msg("application deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgApplicationDeleted}, http.StatusOK)
}

// dateError turns a date that passed validation but failed to parse into a
// field error. The validator and models.ParseDate share one layout, so this
// only fires if they drift apart.
func dateError(err error) error {
	return &validators.ValidationError{Details: []models.ValidationDetail{{
		Field:   models.FieldApplicationDate,
		Message: err.Error(),
	}}}
}
