package service

import (
	"context"
	"strings"

	"github.com/anhtong/guild-api/internal/model"
)

// TeamRepository defines the interface for team storage
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id string) (*model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, id string) error
	ListByEvent(ctx context.Context, eventID string) ([]*model.Team, error)
	GetMember(ctx context.Context, teamID, userID string) (*model.TeamMember, error)
	AddMember(ctx context.Context, member *model.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	ListMembers(ctx context.Context, teamID string) ([]*model.TeamMemberWithUser, error)
}

// TeamsService handles team management. Every mutation is scoped to the
// caller's region through the team's parent event.
type TeamsService struct {
	teams  TeamRepository
	events EventRepository
	users  UserRepository
}

// TeamsServiceConfig holds configuration for the teams service
type TeamsServiceConfig struct {
	TeamRepo  TeamRepository
	EventRepo EventRepository
	UserRepo  UserRepository
}

// NewTeamsService creates a new teams service
func NewTeamsService(cfg TeamsServiceConfig) *TeamsService {
	return &TeamsService{
		teams:  cfg.TeamRepo,
		events: cfg.EventRepo,
		users:  cfg.UserRepo,
	}
}

// CreateTeam creates a team under an event in the caller's region.
// The day defaults to saturday when omitted.
func (s *TeamsService) CreateTeam(ctx context.Context, actorRegion model.Region, req *model.CreateTeamRequest) (*model.Team, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.Region != actorRegion {
		return nil, ErrCrossRegionForbidden
	}

	day := model.DaySaturday
	if req.Day != nil {
		day = *req.Day
	}

	team := &model.Team{
		EventID:     event.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Day:         day,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// UpdateTeam applies a sparse patch to a team in the caller's region.
func (s *TeamsService) UpdateTeam(ctx context.Context, actorRegion model.Region, teamID string, req *model.UpdateTeamRequest) (*model.Team, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	team, _, err := s.guardTeam(ctx, actorRegion, teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		team.Description = req.Description
	}
	if req.Day != nil {
		team.Day = *req.Day
	}

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes a team in the caller's region along with its members.
func (s *TeamsService) DeleteTeam(ctx context.Context, actorRegion model.Region, teamID string) error {
	team, _, err := s.guardTeam(ctx, actorRegion, teamID)
	if err != nil {
		return err
	}
	return s.teams.Delete(ctx, team.ID)
}

// AddMember assigns a user to a team in the caller's region. The user must
// exist, belong to the event's region, and not already be on the team.
func (s *TeamsService) AddMember(ctx context.Context, actorRegion model.Region, teamID, userID string) (*model.TeamMember, error) {
	team, event, err := s.guardTeam(ctx, actorRegion, teamID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Region != event.Region {
		return nil, ErrUserRegionMismatch
	}

	existing, err := s.teams.GetMember(ctx, team.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyTeamMember
	}

	member := &model.TeamMember{
		TeamID: team.ID,
		UserID: user.ID,
	}
	if err := s.teams.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember unassigns a user from a team in the caller's region.
// Removing a user who is not on the team is a no-op.
func (s *TeamsService) RemoveMember(ctx context.Context, actorRegion model.Region, teamID, userID string) error {
	team, _, err := s.guardTeam(ctx, actorRegion, teamID)
	if err != nil {
		return err
	}
	return s.teams.RemoveMember(ctx, team.ID, userID)
}

// GetTeam retrieves a team with its members.
func (s *TeamsService) GetTeam(ctx context.Context, teamID string) (*model.TeamDetails, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	members, err := s.teams.ListMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	return &model.TeamDetails{Team: *team, Members: members}, nil
}

// ListByEvent retrieves an event's teams with their members.
func (s *TeamsService) ListByEvent(ctx context.Context, eventID string) ([]*model.TeamDetails, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	teams, err := s.teams.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	details := make([]*model.TeamDetails, 0, len(teams))
	for _, team := range teams {
		members, err := s.teams.ListMembers(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &model.TeamDetails{Team: *team, Members: members})
	}
	return details, nil
}

// guardTeam loads a team and its event, rejecting callers from another region.
func (s *TeamsService) guardTeam(ctx context.Context, actorRegion model.Region, teamID string) (*model.Team, *model.Event, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, ErrTeamNotFound
	}

	event, err := s.events.GetByID(ctx, team.EventID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, ErrEventNotFound
	}
	if event.Region != actorRegion {
		return nil, nil, ErrCrossRegionForbidden
	}
	return team, event, nil
}
