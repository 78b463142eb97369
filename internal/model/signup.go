package model

import "time"

// EventSignup records a user's availability for one event.
// There is at most one signup per (event, user) pair; re-signing up
// replaces the time slots and notes in place.
type EventSignup struct {
	EventID    string     `json:"eventId"`
	UserID     string     `json:"userId"`
	TimeSlots  []TimeSlot `json:"timeSlots"`
	Notes      *string    `json:"notes,omitempty"`
	SignedUpOn time.Time  `json:"signedUpAt"`
}

// SignupWithUser is a signup with the player's profile attached.
type SignupWithUser struct {
	EventSignup
	User *User `json:"user"`
}
