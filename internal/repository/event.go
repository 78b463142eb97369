package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// CreateWithTeams persists an event together with its teams in one
// transaction. Record ids and creation times are assigned here and
// written back to the given structs.
func (r *EventRepository) CreateWithTeams(ctx context.Context, event *model.Event, teams []*model.Team) error {
	event.ID = newRecordID("event")
	if event.CreatedOn.IsZero() {
		event.CreatedOn = time.Now().UTC()
	}

	batch := database.NewAtomicBatch()
	batch.Add(`
		CREATE type::record($id) CONTENT {
			region: $region,
			week_start_date: type::datetime($week_start_date),
			created_on: type::datetime($created_on)
		}
	`, map[string]interface{}{
		"id":              event.ID,
		"region":          string(event.Region),
		"week_start_date": formatTime(event.WeekStartDate),
		"created_on":      formatTime(event.CreatedOn),
	})

	for _, team := range teams {
		team.ID = newRecordID("team")
		team.EventID = event.ID
		team.CreatedOn = event.CreatedOn

		batch.Add(`
			CREATE type::record($id) CONTENT {
				event: type::record($event_id),
				name: $name,
				description: IF $description IS NOT NULL THEN $description ELSE NONE END,
				day: $day,
				created_on: type::datetime($created_on)
			}
		`, map[string]interface{}{
			"id":          team.ID,
			"event_id":    team.EventID,
			"name":        team.Name,
			"description": ptrToNone(team.Description),
			"day":         string(team.Day),
			"created_on":  formatTime(team.CreatedOn),
		})
	}

	return batch.Execute(ctx, r.db)
}

// GetByID retrieves an event by record id. Returns (nil, nil) when absent.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
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
	return parseEvent(row), nil
}

// GetLatestByRegion retrieves the most recently created event of a region.
// Returns (nil, nil) when the region has no events.
func (r *EventRepository) GetLatestByRegion(ctx context.Context, region model.Region) (*model.Event, error) {
	query := `SELECT * FROM event WHERE region = $region ORDER BY created_on DESC LIMIT 1`
	vars := map[string]interface{}{"region": string(region)}

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
	return parseEvent(row), nil
}

// GetByRegionAndWeek retrieves the event for a region and week start.
// Returns (nil, nil) when the week has no event yet.
func (r *EventRepository) GetByRegionAndWeek(ctx context.Context, region model.Region, weekStart time.Time) (*model.Event, error) {
	query := `
		SELECT * FROM event
		WHERE region = $region AND week_start_date = type::datetime($week_start_date)
		LIMIT 1
	`
	vars := map[string]interface{}{
		"region":          string(region),
		"week_start_date": formatTime(weekStart),
	}

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
	return parseEvent(row), nil
}

// ListByRegion retrieves a region's events, newest week first.
func (r *EventRepository) ListByRegion(ctx context.Context, region model.Region) ([]*model.Event, error) {
	query := `SELECT * FROM event WHERE region = $region ORDER BY week_start_date DESC`
	vars := map[string]interface{}{"region": string(region)}

	rows, err := queryRows(ctx, r.db, query, vars)
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, parseEvent(row))
	}
	return events, nil
}

// parseEvent builds an event from a row map.
func parseEvent(row map[string]interface{}) *model.Event {
	return &model.Event{
		ID:            convertSurrealID(row["id"]),
		Region:        model.Region(getString(row, "region")),
		WeekStartDate: getTime(row, "week_start_date"),
		CreatedOn:     getTime(row, "created_on"),
	}
}
