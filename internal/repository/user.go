package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. The record id and creation time are
// assigned here and written back to the given user.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = newRecordID("user")
	user.CreatedOn = time.Now().UTC()

	query := `
		CREATE type::record($id) CONTENT {
			username: $username,
			discord_id: IF $discord_id IS NOT NULL THEN $discord_id ELSE NONE END,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			is_admin: $is_admin,
			region: $region,
			primary_class: $primary_class,
			secondary_class: IF $secondary_class IS NOT NULL THEN $secondary_class ELSE NONE END,
			primary_role: $primary_role,
			secondary_role: IF $secondary_role IS NOT NULL THEN $secondary_role ELSE NONE END,
			created_on: type::datetime($created_on)
		}
	`

	var secondaryClass interface{}
	if user.SecondaryClass != nil {
		secondaryClass = classStrings(user.SecondaryClass)
	}
	var secondaryRole interface{}
	if user.SecondaryRole != nil {
		secondaryRole = string(*user.SecondaryRole)
	}

	vars := map[string]interface{}{
		"id":              user.ID,
		"username":        user.Username,
		"discord_id":      ptrToNone(user.DiscordID),
		"hash":            ptrToNone(user.Hash),
		"is_admin":        user.IsAdmin,
		"region":          string(user.Region),
		"primary_class":   classStrings(user.PrimaryClass),
		"secondary_class": secondaryClass,
		"primary_role":    string(user.PrimaryRole),
		"secondary_role":  secondaryRole,
		"created_on":      formatTime(user.CreatedOn),
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// GetByID retrieves a user by record id. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
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
	return parseUser(row), nil
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

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
	return parseUser(row), nil
}

// GetByDiscordID retrieves a user by linked Discord account. Returns (nil, nil) when absent.
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID string) (*model.User, error) {
	query := `SELECT * FROM user WHERE discord_id = $discord_id LIMIT 1`
	vars := map[string]interface{}{"discord_id": discordID}

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
	return parseUser(row), nil
}

// Update rewrites a user's mutable fields.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			username = $username,
			discord_id = IF $discord_id IS NOT NULL THEN $discord_id ELSE NONE END,
			primary_class = $primary_class,
			secondary_class = IF $secondary_class IS NOT NULL THEN $secondary_class ELSE NONE END,
			primary_role = $primary_role,
			secondary_role = IF $secondary_role IS NOT NULL THEN $secondary_role ELSE NONE END
	`

	var secondaryClass interface{}
	if user.SecondaryClass != nil {
		secondaryClass = classStrings(user.SecondaryClass)
	}
	var secondaryRole interface{}
	if user.SecondaryRole != nil {
		secondaryRole = string(*user.SecondaryRole)
	}

	vars := map[string]interface{}{
		"id":              user.ID,
		"username":        user.Username,
		"discord_id":      ptrToNone(user.DiscordID),
		"primary_class":   classStrings(user.PrimaryClass),
		"secondary_class": secondaryClass,
		"primary_role":    string(user.PrimaryRole),
		"secondary_role":  secondaryRole,
	}

	return r.db.Execute(ctx, query, vars)
}

// ListByRegion retrieves all users of a region, oldest first.
func (r *UserRepository) ListByRegion(ctx context.Context, region model.Region) ([]*model.User, error) {
	query := `SELECT * FROM user WHERE region = $region ORDER BY created_on ASC`
	vars := map[string]interface{}{"region": string(region)}

	rows, err := queryRows(ctx, r.db, query, vars)
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, parseUser(row))
	}
	return users, nil
}

// Delete removes a user together with their team memberships and signups.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE team_member WHERE user = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE event_signup WHERE user = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{"id": id})
	return batch.Execute(ctx, r.db)
}

// parseUser builds a user from a row map.
func parseUser(row map[string]interface{}) *model.User {
	user := &model.User{
		ID:             convertSurrealID(row["id"]),
		Username:       getString(row, "username"),
		DiscordID:      getStringPtr(row, "discord_id"),
		Hash:           getStringPtr(row, "hash"),
		IsAdmin:        getBool(row, "is_admin"),
		Region:         model.Region(getString(row, "region")),
		PrimaryClass:   getClasses(row, "primary_class"),
		SecondaryClass: getClasses(row, "secondary_class"),
		PrimaryRole:    model.Role(getString(row, "primary_role")),
		CreatedOn:      getTime(row, "created_on"),
	}
	if s := getStringPtr(row, "secondary_role"); s != nil {
		role := model.Role(*s)
		user.SecondaryRole = &role
	}
	return user
}
