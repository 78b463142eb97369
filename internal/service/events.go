package service

import (
	"context"
	"time"

	"github.com/anhtong/guild-api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	CreateWithTeams(ctx context.Context, event *model.Event, teams []*model.Team) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	GetLatestByRegion(ctx context.Context, region model.Region) (*model.Event, error)
	GetByRegionAndWeek(ctx context.Context, region model.Region, weekStart time.Time) (*model.Event, error)
	ListByRegion(ctx context.Context, region model.Region) ([]*model.Event, error)
}

// EventsService handles event creation and reads
type EventsService struct {
	events  EventRepository
	teams   TeamRepository
	signups SignupRepository
	now     func() time.Time
}

// EventsServiceConfig holds configuration for the events service
type EventsServiceConfig struct {
	EventRepo  EventRepository
	TeamRepo   TeamRepository
	SignupRepo SignupRepository
	Now        func() time.Time
}

// NewEventsService creates a new events service
func NewEventsService(cfg EventsServiceConfig) *EventsService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &EventsService{
		events:  cfg.EventRepo,
		teams:   cfg.TeamRepo,
		signups: cfg.SignupRepo,
		now:     now,
	}
}

// defaultTeamSpecs are the lineups every new event starts with: one team
// per lane on each play day.
var defaultTeamSpecs = []struct {
	name        string
	description string
	day         model.Day
}{
	{"Team Top", "Top lane team", model.DaySaturday},
	{"Team Mid", "Mid lane team", model.DaySaturday},
	{"Team Bot", "Bot lane team", model.DaySaturday},
	{"Team Top", "Top lane team", model.DaySunday},
	{"Team Mid", "Mid lane team", model.DaySunday},
	{"Team Bot", "Bot lane team", model.DaySunday},
}

func defaultTeams() []*model.Team {
	teams := make([]*model.Team, 0, len(defaultTeamSpecs))
	for _, spec := range defaultTeamSpecs {
		description := spec.description
		teams = append(teams, &model.Team{
			Name:        spec.name,
			Description: &description,
			Day:         spec.day,
		})
	}
	return teams
}

// WeekStart returns the Monday 00:00 UTC that anchors the week containing
// the given instant.
func WeekStart(now time.Time) time.Time {
	now = now.UTC()
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateEvent creates an ad-hoc event for a region, stamped with the
// current time rather than a week anchor, together with the default teams.
func (s *EventsService) CreateEvent(ctx context.Context, region model.Region) (*model.Event, error) {
	if !region.Valid() {
		return nil, ErrInvalidRegion
	}

	now := s.now().UTC()
	event := &model.Event{
		Region:        region,
		WeekStartDate: now,
		CreatedOn:     now,
	}
	if err := s.events.CreateWithTeams(ctx, event, defaultTeams()); err != nil {
		return nil, err
	}
	return event, nil
}

// WeeklyEventResult reports whether CreateWeeklyEvent made a new event or
// found the week already covered.
type WeeklyEventResult struct {
	Created bool         `json:"created"`
	Event   *model.Event `json:"event"`
}

// CreateWeeklyEvent creates the event for the current week of a region,
// anchored to Monday 00:00 UTC, together with the default teams in one
// transaction. Sequential calls within the same week return the existing
// event with Created=false.
//
// The existence check and the insert are not atomic; two concurrent calls
// in the same instant can both create an event for the week. The callers
// (the ticker job and the trigger endpoint) run sequentially, so this is
// accepted rather than locked around.
func (s *EventsService) CreateWeeklyEvent(ctx context.Context, region model.Region) (*WeeklyEventResult, error) {
	if !region.Valid() {
		return nil, ErrInvalidRegion
	}

	weekStart := WeekStart(s.now())
	existing, err := s.events.GetByRegionAndWeek(ctx, region, weekStart)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &WeeklyEventResult{Created: false, Event: existing}, nil
	}

	event := &model.Event{
		Region:        region,
		WeekStartDate: weekStart,
		CreatedOn:     s.now().UTC(),
	}
	if err := s.events.CreateWithTeams(ctx, event, defaultTeams()); err != nil {
		return nil, err
	}
	return &WeeklyEventResult{Created: true, Event: event}, nil
}

// AutoCreateWeekly runs CreateWeeklyEvent for every region and returns a
// per-region result map. Used by the public trigger endpoint and the
// background job.
func (s *EventsService) AutoCreateWeekly(ctx context.Context) (map[model.Region]*WeeklyEventResult, error) {
	results := make(map[model.Region]*WeeklyEventResult, len(model.Regions))
	for _, region := range model.Regions {
		result, err := s.CreateWeeklyEvent(ctx, region)
		if err != nil {
			return nil, err
		}
		results[region] = result
	}
	return results, nil
}

// ListEvents retrieves a region's events with teams and signups attached,
// newest week first.
func (s *EventsService) ListEvents(ctx context.Context, region model.Region) ([]*model.EventDetails, error) {
	if !region.Valid() {
		return nil, ErrInvalidRegion
	}

	events, err := s.events.ListByRegion(ctx, region)
	if err != nil {
		return nil, err
	}

	details := make([]*model.EventDetails, 0, len(events))
	for _, event := range events {
		d, err := s.loadDetails(ctx, event)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// LatestEvent retrieves the most recent event of a region with teams and
// signups attached.
func (s *EventsService) LatestEvent(ctx context.Context, region model.Region) (*model.EventDetails, error) {
	if !region.Valid() {
		return nil, ErrInvalidRegion
	}

	event, err := s.events.GetLatestByRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNoEventForRegion
	}
	return s.loadDetails(ctx, event)
}

// GetEvent retrieves one event with teams and signups attached.
func (s *EventsService) GetEvent(ctx context.Context, id string) (*model.EventDetails, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return s.loadDetails(ctx, event)
}

func (s *EventsService) loadDetails(ctx context.Context, event *model.Event) (*model.EventDetails, error) {
	teams, err := s.teams.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	teamDetails := make([]*model.TeamDetails, 0, len(teams))
	for _, team := range teams {
		members, err := s.teams.ListMembers(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		teamDetails = append(teamDetails, &model.TeamDetails{
			Team:    *team,
			Members: members,
		})
	}

	signups, err := s.signups.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	return &model.EventDetails{
		Event:   *event,
		Teams:   teamDetails,
		Signups: signups,
	}, nil
}
