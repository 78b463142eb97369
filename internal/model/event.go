package model

import "time"

// Event is a weekly regional guild event.
type Event struct {
	ID            string    `json:"id"`
	Region        Region    `json:"region"`
	WeekStartDate time.Time `json:"weekStartDate"`
	CreatedOn     time.Time `json:"createdAt"`
}

// EventDetails is an event with its teams and signups attached.
type EventDetails struct {
	Event
	Teams   []*TeamDetails    `json:"teams"`
	Signups []*SignupWithUser `json:"signups"`
}
