package service

import "errors"

// Service-level errors. Handlers translate these to HTTP statuses in one
// place (handler.MapServiceError); check them with errors.Is.
var (
	// Authentication
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Regions
	ErrInvalidRegion = errors.New("region must be 'vn' or 'na'")

	// Users
	ErrUserNotFound         = errors.New("user not found")
	ErrUserNotFoundOrRegion = errors.New("user not found in your region")
	ErrCannotUpdateOthers   = errors.New("cannot update another user's profile")
	ErrUserRegionMismatch   = errors.New("user belongs to a different region")

	// Events
	ErrEventNotFound    = errors.New("event not found")
	ErrNoEventForRegion = errors.New("no event found for this region")

	// Signups
	ErrRegionConflict   = errors.New("username is already registered in another region")
	ErrIdentityConflict = errors.New("username is already linked to a different discord account")

	// Teams
	ErrTeamNotFound         = errors.New("team not found")
	ErrCrossRegionForbidden = errors.New("cannot manage teams in another region")
	ErrAlreadyTeamMember    = errors.New("user is already a member of this team")

	// Schedule
	ErrScheduleNotFound = errors.New("scheduled notification not found")
)
