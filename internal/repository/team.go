package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/model"
)

// TeamRepository handles team and team membership data access
type TeamRepository struct {
	db database.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db database.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create persists a new team.
func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	team.ID = newRecordID("team")
	team.CreatedOn = time.Now().UTC()

	query := `
		CREATE type::record($id) CONTENT {
			event: type::record($event_id),
			name: $name,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			day: $day,
			created_on: type::datetime($created_on)
		}
	`

	vars := map[string]interface{}{
		"id":          team.ID,
		"event_id":    team.EventID,
		"name":        team.Name,
		"description": ptrToNone(team.Description),
		"day":         string(team.Day),
		"created_on":  formatTime(team.CreatedOn),
	}

	return r.db.Execute(ctx, query, vars)
}

// GetByID retrieves a team by record id. Returns (nil, nil) when absent.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*model.Team, error) {
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
	return parseTeam(row), nil
}

// Update rewrites a team's mutable fields.
func (r *TeamRepository) Update(ctx context.Context, team *model.Team) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			description = IF $description IS NOT NULL THEN $description ELSE NONE END,
			day = $day
	`

	vars := map[string]interface{}{
		"id":          team.ID,
		"name":        team.Name,
		"description": ptrToNone(team.Description),
		"day":         string(team.Day),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a team together with its membership rows.
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE team_member WHERE team = type::record($id)`, map[string]interface{}{"id": id})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{"id": id})
	return batch.Execute(ctx, r.db)
}

// ListByEvent retrieves an event's teams, oldest first.
func (r *TeamRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Team, error) {
	query := `SELECT * FROM team WHERE event = type::record($event_id) ORDER BY created_on ASC`
	vars := map[string]interface{}{"event_id": eventID}

	rows, err := queryRows(ctx, r.db, query, vars)
	if err != nil {
		return nil, err
	}

	teams := make([]*model.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, parseTeam(row))
	}
	return teams, nil
}

// GetMember retrieves a membership row. Returns (nil, nil) when the user
// is not on the team.
func (r *TeamRepository) GetMember(ctx context.Context, teamID, userID string) (*model.TeamMember, error) {
	query := `
		SELECT * FROM team_member
		WHERE team = type::record($team_id) AND user = type::record($user_id)
		LIMIT 1
	`
	vars := map[string]interface{}{
		"team_id": teamID,
		"user_id": userID,
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
	return parseTeamMember(row), nil
}

// AddMember assigns a user to a team.
func (r *TeamRepository) AddMember(ctx context.Context, member *model.TeamMember) error {
	member.AssignedOn = time.Now().UTC()

	query := `
		CREATE team_member CONTENT {
			team: type::record($team_id),
			user: type::record($user_id),
			assigned_on: type::datetime($assigned_on)
		}
	`
	vars := map[string]interface{}{
		"team_id":     member.TeamID,
		"user_id":     member.UserID,
		"assigned_on": formatTime(member.AssignedOn),
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: user already on team", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// RemoveMember deletes a membership row. Removing an absent member is a no-op.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	query := `
		DELETE team_member
		WHERE team = type::record($team_id) AND user = type::record($user_id)
	`
	vars := map[string]interface{}{
		"team_id": teamID,
		"user_id": userID,
	}

	return r.db.Execute(ctx, query, vars)
}

// ListMembers retrieves a team's members with their profiles attached,
// oldest assignment first.
func (r *TeamRepository) ListMembers(ctx context.Context, teamID string) ([]*model.TeamMemberWithUser, error) {
	query := `
		SELECT * FROM team_member
		WHERE team = type::record($team_id)
		ORDER BY assigned_on ASC
		FETCH user
	`
	vars := map[string]interface{}{"team_id": teamID}

	rows, err := queryRows(ctx, r.db, query, vars)
	if err != nil {
		return nil, err
	}

	members := make([]*model.TeamMemberWithUser, 0, len(rows))
	for _, row := range rows {
		member := &model.TeamMemberWithUser{
			AssignedOn: getTime(row, "assigned_on"),
		}
		if userRow, ok := row["user"].(map[string]interface{}); ok {
			member.User = parseUser(userRow)
		}
		members = append(members, member)
	}
	return members, nil
}

// parseTeam builds a team from a row map.
func parseTeam(row map[string]interface{}) *model.Team {
	return &model.Team{
		ID:          convertSurrealID(row["id"]),
		EventID:     convertSurrealID(row["event"]),
		Name:        getString(row, "name"),
		Description: getStringPtr(row, "description"),
		Day:         model.Day(getString(row, "day")),
		CreatedOn:   getTime(row, "created_on"),
	}
}

// parseTeamMember builds a membership from a row map.
func parseTeamMember(row map[string]interface{}) *model.TeamMember {
	return &model.TeamMember{
		TeamID:     convertSurrealID(row["team"]),
		UserID:     convertSurrealID(row["user"]),
		AssignedOn: getTime(row, "assigned_on"),
	}
}
