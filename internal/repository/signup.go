package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/model"
)

// SignupRepository handles event signup data access
type SignupRepository struct {
	db database.Database
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db database.Database) *SignupRepository {
	return &SignupRepository{db: db}
}

// Create persists a new signup.
func (r *SignupRepository) Create(ctx context.Context, signup *model.EventSignup) error {
	signup.SignedUpOn = time.Now().UTC()

	query := `
		CREATE event_signup CONTENT {
			event: type::record($event_id),
			user: type::record($user_id),
			time_slots: $time_slots,
			notes: IF $notes IS NOT NULL THEN $notes ELSE NONE END,
			signed_up_on: type::datetime($signed_up_on)
		}
	`
	vars := map[string]interface{}{
		"event_id":     signup.EventID,
		"user_id":      signup.UserID,
		"time_slots":   slotStrings(signup.TimeSlots),
		"notes":        ptrToNone(signup.Notes),
		"signed_up_on": formatTime(signup.SignedUpOn),
	}

	return r.db.Execute(ctx, query, vars)
}

// Update replaces the time slots and notes of an existing signup.
// The original signup time is kept.
func (r *SignupRepository) Update(ctx context.Context, eventID, userID string, slots []model.TimeSlot, notes *string) error {
	query := `
		UPDATE event_signup SET
			time_slots = $time_slots,
			notes = IF $notes IS NOT NULL THEN $notes ELSE NONE END
		WHERE event = type::record($event_id) AND user = type::record($user_id)
	`
	vars := map[string]interface{}{
		"event_id":   eventID,
		"user_id":    userID,
		"time_slots": slotStrings(slots),
		"notes":      ptrToNone(notes),
	}

	return r.db.Execute(ctx, query, vars)
}

// GetByEventAndUser retrieves a signup row. Returns (nil, nil) when the
// user has not signed up for the event.
func (r *SignupRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*model.EventSignup, error) {
	query := `
		SELECT * FROM event_signup
		WHERE event = type::record($event_id) AND user = type::record($user_id)
		LIMIT 1
	`
	vars := map[string]interface{}{
		"event_id": eventID,
		"user_id":  userID,
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
	return parseSignup(row), nil
}

// ListByEvent retrieves an event's signups with the players attached,
// earliest signup first.
func (r *SignupRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.SignupWithUser, error) {
	query := `
		SELECT * FROM event_signup
		WHERE event = type::record($event_id)
		ORDER BY signed_up_on ASC
		FETCH user
	`
	vars := map[string]interface{}{"event_id": eventID}

	rows, err := queryRows(ctx, r.db, query, vars)
	if err != nil {
		return nil, err
	}

	signups := make([]*model.SignupWithUser, 0, len(rows))
	for _, row := range rows {
		entry := &model.SignupWithUser{
			EventSignup: model.EventSignup{
				EventID:    eventID,
				TimeSlots:  getTimeSlots(row, "time_slots"),
				Notes:      getStringPtr(row, "notes"),
				SignedUpOn: getTime(row, "signed_up_on"),
			},
		}
		if userRow, ok := row["user"].(map[string]interface{}); ok {
			entry.User = parseUser(userRow)
			entry.UserID = entry.User.ID
		}
		signups = append(signups, entry)
	}
	return signups, nil
}

// parseSignup builds a signup from a row map.
func parseSignup(row map[string]interface{}) *model.EventSignup {
	return &model.EventSignup{
		EventID:    convertSurrealID(row["event"]),
		UserID:     convertSurrealID(row["user"]),
		TimeSlots:  getTimeSlots(row, "time_slots"),
		Notes:      getStringPtr(row, "notes"),
		SignedUpOn: getTime(row, "signed_up_on"),
	}
}
