package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/model"
)

// ScheduleRepository handles scheduled notification data access
type ScheduleRepository struct {
	db database.Database
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db database.Database) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create persists a new scheduled notification.
func (r *ScheduleRepository) Create(ctx context.Context, n *model.ScheduledNotification) error {
	n.ID = newRecordID("scheduled_notification")
	n.CreatedOn = time.Now().UTC()

	query := `
		CREATE type::record($id) CONTENT {
			title: $title,
			days: IF $days IS NOT NULL THEN $days ELSE NONE END,
			region: $region,
			start_time: $start_time,
			end_time: $end_time,
			minutes_before: $minutes_before,
			role_mention: IF $role_mention IS NOT NULL THEN $role_mention ELSE NONE END,
			channel_id: $channel_id,
			enabled: $enabled,
			created_on: type::datetime($created_on)
		}
	`

	var days interface{}
	if n.Days != nil {
		days = n.Days
	}

	vars := map[string]interface{}{
		"id":             n.ID,
		"title":          n.Title,
		"days":           days,
		"region":         string(n.Region),
		"start_time":     n.StartTime,
		"end_time":       n.EndTime,
		"minutes_before": n.MinutesBefore,
		"role_mention":   ptrToNone(n.RoleMention),
		"channel_id":     n.ChannelID,
		"enabled":        n.Enabled,
		"created_on":     formatTime(n.CreatedOn),
	}

	return r.db.Execute(ctx, query, vars)
}

// GetByID retrieves a notification by record id. Returns (nil, nil) when absent.
func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*model.ScheduledNotification, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, err := asMap(result)
	if err != nil {
		return nil, err
	}
	return parseNotification(row), nil
}

// List retrieves all scheduled notifications, oldest first.
func (r *ScheduleRepository) List(ctx context.Context) ([]*model.ScheduledNotification, error) {
	query := `SELECT * FROM scheduled_notification ORDER BY created_on ASC`

	rows, err := queryRows(ctx, r.db, query, nil)
	if err != nil {
		return nil, err
	}
	return parseNotifications(rows), nil
}

// ListByRegion retrieves a region's scheduled notifications, oldest first.
func (r *ScheduleRepository) ListByRegion(ctx context.Context, region model.Region) ([]*model.ScheduledNotification, error) {
	query := `SELECT * FROM scheduled_notification WHERE region = $region ORDER BY created_on ASC`
	vars := map[string]interface{}{"region": string(region)}

	rows, err := queryRows(ctx, r.db, query, vars)
	if err != nil {
		return nil, err
	}
	return parseNotifications(rows), nil
}

// Update rewrites a notification's mutable fields.
func (r *ScheduleRepository) Update(ctx context.Context, n *model.ScheduledNotification) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			days = IF $days IS NOT NULL THEN $days ELSE NONE END,
			region = $region,
			start_time = $start_time,
			end_time = $end_time,
			minutes_before = $minutes_before,
			role_mention = IF $role_mention IS NOT NULL THEN $role_mention ELSE NONE END,
			channel_id = $channel_id,
			enabled = $enabled
	`

	var days interface{}
	if n.Days != nil {
		days = n.Days
	}

	vars := map[string]interface{}{
		"id":             n.ID,
		"title":          n.Title,
		"days":           days,
		"region":         string(n.Region),
		"start_time":     n.StartTime,
		"end_time":       n.EndTime,
		"minutes_before": n.MinutesBefore,
		"role_mention":   ptrToNone(n.RoleMention),
		"channel_id":     n.ChannelID,
		"enabled":        n.Enabled,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a notification.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseNotifications(rows []map[string]interface{}) []*model.ScheduledNotification {
	out := make([]*model.ScheduledNotification, 0, len(rows))
	for _, row := range rows {
		out = append(out, parseNotification(row))
	}
	return out
}

// parseNotification builds a notification from a row map.
func parseNotification(row map[string]interface{}) *model.ScheduledNotification {
	return &model.ScheduledNotification{
		ID:            convertSurrealID(row["id"]),
		Title:         getString(row, "title"),
		Days:          getStringSlice(row, "days"),
		Region:        model.Region(getString(row, "region")),
		StartTime:     getString(row, "start_time"),
		EndTime:       getString(row, "end_time"),
		MinutesBefore: getInt(row, "minutes_before"),
		RoleMention:   getStringPtr(row, "role_mention"),
		ChannelID:     getString(row, "channel_id"),
		Enabled:       getBool(row, "enabled"),
		CreatedOn:     getTime(row, "created_on"),
	}
}
