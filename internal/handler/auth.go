package handler

import (
	"net/http"

	"github.com/anhtong/guild-api/internal/middleware"
	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// AuthHandler handles login, signups and the current-user endpoint
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.auth.Login(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Signup handles POST /auth/signup.
// Answers 201 for a fresh signup and 200 when an existing signup was updated.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.auth.Signup(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, signupStatus(result), result)
}

// DiscordSignup handles POST /auth/discord/signup
func (h *AuthHandler) DiscordSignup(w http.ResponseWriter, r *http.Request) {
	var req model.DiscordSignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.auth.DiscordSignup(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, signupStatus(result), result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	user, err := h.auth.GetCurrentUser(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

func signupStatus(result *service.SignupResult) int {
	if result.Updated {
		return http.StatusOK
	}
	return http.StatusCreated
}

// actorFrom builds the service-level caller from the request context.
func actorFrom(r *http.Request) service.Actor {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		return service.Actor{}
	}
	return service.Actor{
		UserID:   identity.UserID,
		Username: identity.Username,
		Region:   model.Region(identity.Region),
		IsAdmin:  identity.IsAdmin,
	}
}
