package model

import (
	"fmt"
	"strings"
)

const (
	classPairSize     = 2
	maxUsernameLength = 32
	maxNotesLength    = 500
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the event signup payload shared by the plain and
// Discord signup endpoints.
type SignupRequest struct {
	Username       string     `json:"username"`
	Region         Region     `json:"region"`
	PrimaryClass   []Class    `json:"primaryClass"`
	SecondaryClass []Class    `json:"secondaryClass,omitempty"`
	PrimaryRole    Role       `json:"primaryRole"`
	SecondaryRole  *Role      `json:"secondaryRole,omitempty"`
	TimeSlots      []TimeSlot `json:"timeSlots"`
	Notes          *string    `json:"notes,omitempty"`
}

// Validate checks the signup payload and returns all field errors found.
func (r *SignupRequest) Validate() []FieldError {
	var errs []FieldError

	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	case len(username) > maxUsernameLength:
		errs = append(errs, FieldError{Field: "username", Message: fmt.Sprintf("username must be at most %d characters", maxUsernameLength)})
	case strings.Contains(username, ":"):
		errs = append(errs, FieldError{Field: "username", Message: "username must not contain ':'"})
	}

	if !r.Region.Valid() {
		errs = append(errs, FieldError{Field: "region", Message: "region must be 'vn' or 'na'"})
	}

	errs = append(errs, validateClassPair("primaryClass", r.PrimaryClass, true)...)
	errs = append(errs, validateClassPair("secondaryClass", r.SecondaryClass, false)...)

	if !r.PrimaryRole.Valid() {
		errs = append(errs, FieldError{Field: "primaryRole", Message: "primaryRole must be 'dps', 'healer' or 'tank'"})
	}
	if r.SecondaryRole != nil && !r.SecondaryRole.Valid() {
		errs = append(errs, FieldError{Field: "secondaryRole", Message: "secondaryRole must be 'dps', 'healer' or 'tank'"})
	}

	errs = append(errs, validateTimeSlots(r.TimeSlots)...)

	if r.Notes != nil && len(*r.Notes) > maxNotesLength {
		errs = append(errs, FieldError{Field: "notes", Message: fmt.Sprintf("notes must be at most %d characters", maxNotesLength)})
	}

	return errs
}

// DiscordSignupRequest is the Discord bot signup payload.
type DiscordSignupRequest struct {
	SignupRequest
	DiscordID string `json:"discordId"`
}

// Validate checks the Discord signup payload.
func (r *DiscordSignupRequest) Validate() []FieldError {
	errs := r.SignupRequest.Validate()
	if strings.TrimSpace(r.DiscordID) == "" {
		errs = append(errs, FieldError{Field: "discordId", Message: "discordId is required"})
	}
	return errs
}

// UpdateUserRequest is a sparse patch of a user's class and role
// preferences. Nil fields are left untouched.
type UpdateUserRequest struct {
	PrimaryClass   []Class `json:"primaryClass,omitempty"`
	SecondaryClass []Class `json:"secondaryClass,omitempty"`
	PrimaryRole    *Role   `json:"primaryRole,omitempty"`
	SecondaryRole  *Role   `json:"secondaryRole,omitempty"`
}

// Validate checks only the fields present in the patch.
func (r *UpdateUserRequest) Validate() []FieldError {
	var errs []FieldError

	if r.PrimaryClass != nil {
		errs = append(errs, validateClassPair("primaryClass", r.PrimaryClass, true)...)
	}
	if r.SecondaryClass != nil {
		errs = append(errs, validateClassPair("secondaryClass", r.SecondaryClass, false)...)
	}
	if r.PrimaryRole != nil && !r.PrimaryRole.Valid() {
		errs = append(errs, FieldError{Field: "primaryRole", Message: "primaryRole must be 'dps', 'healer' or 'tank'"})
	}
	if r.SecondaryRole != nil && !r.SecondaryRole.Valid() {
		errs = append(errs, FieldError{Field: "secondaryRole", Message: "secondaryRole must be 'dps', 'healer' or 'tank'"})
	}

	return errs
}

// CreateTeamRequest creates a team under an event.
type CreateTeamRequest struct {
	EventID     string  `json:"eventId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Day         *Day    `json:"day,omitempty"`
}

// Validate checks the team creation payload. Day defaults to saturday
// when omitted.
func (r *CreateTeamRequest) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, FieldError{Field: "eventId", Message: "eventId is required"})
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Day != nil && !r.Day.Valid() {
		errs = append(errs, FieldError{Field: "day", Message: "day must be 'saturday' or 'sunday'"})
	}

	return errs
}

// UpdateTeamRequest is a sparse patch of a team.
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Day         *Day    `json:"day,omitempty"`
}

// Validate checks only the fields present in the patch.
func (r *UpdateTeamRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if r.Day != nil && !r.Day.Valid() {
		errs = append(errs, FieldError{Field: "day", Message: "day must be 'saturday' or 'sunday'"})
	}

	return errs
}

// AddTeamMemberRequest assigns a user to a team.
type AddTeamMemberRequest struct {
	UserID string `json:"userId"`
}

// Validate checks the member assignment payload.
func (r *AddTeamMemberRequest) Validate() []FieldError {
	if strings.TrimSpace(r.UserID) == "" {
		return []FieldError{{Field: "userId", Message: "userId is required"}}
	}
	return nil
}

// CreateScheduleRequest creates a scheduled notification.
type CreateScheduleRequest struct {
	Title         string   `json:"title"`
	Days          []string `json:"days,omitempty"`
	Region        Region   `json:"region"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	MinutesBefore int      `json:"minutesBefore"`
	RoleMention   *string  `json:"roleMention,omitempty"`
	ChannelID     string   `json:"channelId"`
	Enabled       *bool    `json:"enabled,omitempty"`
}

// Validate checks the notification creation payload.
func (r *CreateScheduleRequest) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if !r.Region.Valid() {
		errs = append(errs, FieldError{Field: "region", Message: "region must be 'vn' or 'na'"})
	}
	if strings.TrimSpace(r.ChannelID) == "" {
		errs = append(errs, FieldError{Field: "channelId", Message: "channelId is required"})
	}
	if r.MinutesBefore < 0 {
		errs = append(errs, FieldError{Field: "minutesBefore", Message: "minutesBefore must not be negative"})
	}

	return errs
}

// UpdateScheduleRequest is a sparse patch of a scheduled notification.
type UpdateScheduleRequest struct {
	Title         *string  `json:"title,omitempty"`
	Days          []string `json:"days,omitempty"`
	Region        *Region  `json:"region,omitempty"`
	StartTime     *string  `json:"startTime,omitempty"`
	EndTime       *string  `json:"endTime,omitempty"`
	MinutesBefore *int     `json:"minutesBefore,omitempty"`
	RoleMention   *string  `json:"roleMention,omitempty"`
	ChannelID     *string  `json:"channelId,omitempty"`
	Enabled       *bool    `json:"enabled,omitempty"`
}

// Validate checks only the fields present in the patch.
func (r *UpdateScheduleRequest) Validate() []FieldError {
	var errs []FieldError

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if r.Region != nil && !r.Region.Valid() {
		errs = append(errs, FieldError{Field: "region", Message: "region must be 'vn' or 'na'"})
	}
	if r.MinutesBefore != nil && *r.MinutesBefore < 0 {
		errs = append(errs, FieldError{Field: "minutesBefore", Message: "minutesBefore must not be negative"})
	}

	return errs
}

// validateClassPair checks a class selection: exactly two known tags.
// Optional pairs may be absent entirely but not partially filled.
func validateClassPair(field string, classes []Class, required bool) []FieldError {
	if len(classes) == 0 {
		if required {
			return []FieldError{{Field: field, Message: fmt.Sprintf("%s must contain exactly %d classes", field, classPairSize)}}
		}
		return nil
	}
	if len(classes) != classPairSize {
		return []FieldError{{Field: field, Message: fmt.Sprintf("%s must contain exactly %d classes", field, classPairSize)}}
	}

	var errs []FieldError
	for _, c := range classes {
		if !c.Valid() {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("unknown class '%s'", c)})
		}
	}
	return errs
}

// validateTimeSlots checks a non-empty selection of known windows.
func validateTimeSlots(slots []TimeSlot) []FieldError {
	if len(slots) == 0 {
		return []FieldError{{Field: "timeSlots", Message: "at least one time slot is required"}}
	}

	var errs []FieldError
	seen := make(map[TimeSlot]bool, len(slots))
	for _, s := range slots {
		if !s.Valid() {
			errs = append(errs, FieldError{Field: "timeSlots", Message: fmt.Sprintf("unknown time slot '%s'", s)})
			continue
		}
		if seen[s] {
			errs = append(errs, FieldError{Field: "timeSlots", Message: fmt.Sprintf("duplicate time slot '%s'", s)})
		}
		seen[s] = true
	}
	return errs
}
