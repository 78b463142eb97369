package handler

import (
	"net/http"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// ScheduleHandler handles scheduled notification endpoints
type ScheduleHandler struct {
	schedules *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// List handles GET /schedule
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.schedules.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, notifications)
}

// ListByRegion handles GET /schedule/region/{region}, the public endpoint
// the Discord notifier polls.
func (h *ScheduleHandler) ListByRegion(w http.ResponseWriter, r *http.Request) {
	region, ok := model.ParseRegion(r.PathValue("region"))
	if !ok {
		WriteError(w, model.NewBadRequestError("region must be 'vn' or 'na'"))
		return
	}

	notifications, err := h.schedules.ListByRegion(r.Context(), region)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, notifications)
}

// Create handles POST /schedule
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateScheduleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	notification, err := h.schedules.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, notification)
}

// Update handles PUT /schedule/{id}
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateScheduleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	notification, err := h.schedules.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, notification)
}

// Delete handles DELETE /schedule/{id}
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.schedules.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
