package handler

import (
	"net/http"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// UsersHandler handles user management endpoints
type UsersHandler struct {
	users *service.UsersService
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(users *service.UsersService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users. Admin only; an optional ?region= overrides the
// caller's region.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	region := actorFrom(r).Region
	if raw := r.URL.Query().Get("region"); raw != "" {
		parsed, ok := model.ParseRegion(raw)
		if !ok {
			WriteError(w, model.NewBadRequestError("region must be 'vn' or 'na'"))
			return
		}
		region = parsed
	}

	users, err := h.users.List(r.Context(), region)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Update handles PUT /users/{id}
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.users.Update(r.Context(), actorFrom(r), r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
