package model

import "time"

// ScheduledNotification configures a reminder an external Discord notifier
// delivers before guild activities.
type ScheduledNotification struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Days          []string  `json:"days,omitempty"`
	Region        Region    `json:"region"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	MinutesBefore int       `json:"minutesBefore"`
	RoleMention   *string   `json:"roleMention,omitempty"`
	ChannelID     string    `json:"channelId"`
	Enabled       bool      `json:"enabled"`
	CreatedOn     time.Time `json:"createdAt"`
}
