package model

import "time"

// Team is a named lineup attached to an event, playing on one day.
type Team struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Day         Day       `json:"day"`
	CreatedOn   time.Time `json:"createdAt"`
}

// TeamMember is a user's membership in a team.
type TeamMember struct {
	TeamID     string    `json:"teamId"`
	UserID     string    `json:"userId"`
	AssignedOn time.Time `json:"assignedAt"`
}

// TeamMemberWithUser is a membership with the member's profile attached.
type TeamMemberWithUser struct {
	User       *User     `json:"user"`
	AssignedOn time.Time `json:"assignedAt"`
}

// TeamDetails is a team with its members attached.
type TeamDetails struct {
	Team
	Members []*TeamMemberWithUser `json:"members"`
}
