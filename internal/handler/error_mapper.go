package handler

import (
	"errors"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Validation failures already arrive as problem details.
	var pd *model.ProblemDetails
	if errors.As(err, &pd) {
		return pd
	}

	switch {
	// ===== Bad Input → 400 =====
	case errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrInvalidRegion),
		errors.Is(err, service.ErrUserRegionMismatch):
		return model.NewBadRequestError(err.Error())

	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrCrossRegionForbidden),
		errors.Is(err, service.ErrCannotUpdateOthers):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrUserNotFoundOrRegion):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrNoEventForRegion):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrTeamNotFound):
		return model.NewNotFoundError("team")
	case errors.Is(err, service.ErrScheduleNotFound):
		return model.NewNotFoundError("scheduled notification")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrRegionConflict),
		errors.Is(err, service.ErrIdentityConflict),
		errors.Is(err, service.ErrAlreadyTeamMember):
		return model.NewConflictError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
