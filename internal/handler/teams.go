package handler

import (
	"net/http"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// TeamsHandler handles team endpoints
type TeamsHandler struct {
	teams *service.TeamsService
}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler(teams *service.TeamsService) *TeamsHandler {
	return &TeamsHandler{teams: teams}
}

// ListByEvent handles GET /teams/event/{eventId}
func (h *TeamsHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.ListByEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, teams)
}

// Get handles GET /teams/{id}
func (h *TeamsHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.teams.GetTeam(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, team)
}

// Create handles POST /teams
func (h *TeamsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	team, err := h.teams.CreateTeam(r.Context(), actorFrom(r).Region, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, team)
}

// Update handles PUT /teams/{id}
func (h *TeamsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	team, err := h.teams.UpdateTeam(r.Context(), actorFrom(r).Region, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, team)
}

// Delete handles DELETE /teams/{id}
func (h *TeamsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teams.DeleteTeam(r.Context(), actorFrom(r).Region, r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}

// AddMember handles POST /teams/{id}/members
func (h *TeamsHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req model.AddTeamMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	member, err := h.teams.AddMember(r.Context(), actorFrom(r).Region, r.PathValue("id"), req.UserID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, member)
}

// RemoveMember handles DELETE /teams/{id}/members/{userId}
func (h *TeamsHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	err := h.teams.RemoveMember(r.Context(), actorFrom(r).Region, r.PathValue("id"), r.PathValue("userId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
