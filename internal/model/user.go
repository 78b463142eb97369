package model

import "time"

// User represents a guild member account.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DiscordID      *string   `json:"discordId,omitempty"`
	Hash           *string   `json:"-"` // Never expose password hash
	IsAdmin        bool      `json:"isAdmin"`
	Region         Region    `json:"region"`
	PrimaryClass   []Class   `json:"primaryClass"`
	SecondaryClass []Class   `json:"secondaryClass,omitempty"`
	PrimaryRole    Role      `json:"primaryRole"`
	SecondaryRole  *Role     `json:"secondaryRole,omitempty"`
	CreatedOn      time.Time `json:"createdAt"`
}
