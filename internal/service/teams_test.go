package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anhtong/guild-api/internal/model"
)

func newTeamsFixture() (*TeamsService, *mockUserRepo, *mockEventRepo, *mockTeamRepo) {
	users := newMockUserRepo()
	teams := newMockTeamRepo(users)
	events := newMockEventRepo(teams)

	svc := NewTeamsService(TeamsServiceConfig{
		TeamRepo:  teams,
		EventRepo: events,
		UserRepo:  users,
	})
	return svc, users, events, teams
}

func seedPlayer(users *mockUserRepo, username string, region model.Region) *model.User {
	user := &model.User{Username: username, Region: region}
	_ = users.Create(context.Background(), user)
	return user
}

func seedTeam(t *testing.T, svc *TeamsService, eventID string) *model.Team {
	t.Helper()
	team, err := svc.CreateTeam(context.Background(), model.RegionVN, &model.CreateTeamRequest{
		EventID: eventID,
		Name:    "Team Alpha",
	})
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}

var testWeek = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

// ============================================================================
// CreateTeam Tests
// ============================================================================

func TestCreateTeam_EventNotFound(t *testing.T) {
	svc, _, _, _ := newTeamsFixture()

	_, err := svc.CreateTeam(context.Background(), model.RegionVN, &model.CreateTeamRequest{
		EventID: "event:missing",
		Name:    "Team Alpha",
	})
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestCreateTeam_CrossRegionForbidden(t *testing.T) {
	svc, _, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionNA, testWeek)

	_, err := svc.CreateTeam(context.Background(), model.RegionVN, &model.CreateTeamRequest{
		EventID: event.ID,
		Name:    "Team Alpha",
	})
	if !errors.Is(err, ErrCrossRegionForbidden) {
		t.Errorf("expected ErrCrossRegionForbidden, got %v", err)
	}
}

func TestCreateTeam_DayDefaultsToSaturday(t *testing.T) {
	svc, _, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)

	team, err := svc.CreateTeam(context.Background(), model.RegionVN, &model.CreateTeamRequest{
		EventID: event.ID,
		Name:    "  Team Alpha  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Day != model.DaySaturday {
		t.Errorf("expected day saturday, got %s", team.Day)
	}
	if team.Name != "Team Alpha" {
		t.Errorf("expected trimmed name, got %q", team.Name)
	}
}

// ============================================================================
// UpdateTeam / DeleteTeam Tests
// ============================================================================

func TestUpdateTeam_SparsePatch(t *testing.T) {
	svc, _, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)

	day := model.DaySunday
	updated, err := svc.UpdateTeam(context.Background(), model.RegionVN, team.ID, &model.UpdateTeamRequest{
		Day: &day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Day != model.DaySunday {
		t.Errorf("expected day sunday, got %s", updated.Day)
	}
	if updated.Name != "Team Alpha" {
		t.Errorf("expected name untouched, got %q", updated.Name)
	}
}

func TestUpdateTeam_CrossRegionForbidden(t *testing.T) {
	svc, _, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)

	name := "Renamed"
	_, err := svc.UpdateTeam(context.Background(), model.RegionNA, team.ID, &model.UpdateTeamRequest{
		Name: &name,
	})
	if !errors.Is(err, ErrCrossRegionForbidden) {
		t.Errorf("expected ErrCrossRegionForbidden, got %v", err)
	}
}

func TestDeleteTeam_RemovesTeam(t *testing.T) {
	svc, _, events, teams := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)

	if err := svc.DeleteTeam(context.Background(), model.RegionVN, team.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := teams.teams[team.ID]; ok {
		t.Error("expected team to be deleted")
	}
}

func TestDeleteTeam_NotFound(t *testing.T) {
	svc, _, _, _ := newTeamsFixture()

	err := svc.DeleteTeam(context.Background(), model.RegionVN, "team:missing")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("expected ErrTeamNotFound, got %v", err)
	}
}

// ============================================================================
// AddMember / RemoveMember Tests
// ============================================================================

func TestAddMember_UserNotFound(t *testing.T) {
	svc, _, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)

	_, err := svc.AddMember(context.Background(), model.RegionVN, team.ID, "user:missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddMember_RegionMismatch(t *testing.T) {
	svc, users, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)
	outsider := seedPlayer(users, "outsider", model.RegionNA)

	_, err := svc.AddMember(context.Background(), model.RegionVN, team.ID, outsider.ID)
	if !errors.Is(err, ErrUserRegionMismatch) {
		t.Errorf("expected ErrUserRegionMismatch, got %v", err)
	}
}

func TestAddMember_DuplicateRejected(t *testing.T) {
	svc, users, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)
	player := seedPlayer(users, "player", model.RegionVN)

	if _, err := svc.AddMember(context.Background(), model.RegionVN, team.ID, player.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := svc.AddMember(context.Background(), model.RegionVN, team.ID, player.ID)
	if !errors.Is(err, ErrAlreadyTeamMember) {
		t.Errorf("expected ErrAlreadyTeamMember, got %v", err)
	}
}

func TestRemoveMember_Idempotent(t *testing.T) {
	svc, users, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)
	player := seedPlayer(users, "player", model.RegionVN)

	if _, err := svc.AddMember(context.Background(), model.RegionVN, team.ID, player.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveMember(context.Background(), model.RegionVN, team.ID, player.ID); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	// Removing again is a no-op, not an error.
	if err := svc.RemoveMember(context.Background(), model.RegionVN, team.ID, player.ID); err != nil {
		t.Errorf("second remove should be a no-op, got %v", err)
	}
}

// ============================================================================
// Read Tests
// ============================================================================

func TestGetTeam_WithMembers(t *testing.T) {
	svc, users, events, _ := newTeamsFixture()
	event := seedEvent(events, model.RegionVN, testWeek)
	team := seedTeam(t, svc, event.ID)
	player := seedPlayer(users, "player", model.RegionVN)

	if _, err := svc.AddMember(context.Background(), model.RegionVN, team.ID, player.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	details, err := svc.GetTeam(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(details.Members))
	}
	if details.Members[0].User.Username != "player" {
		t.Errorf("expected member 'player', got %q", details.Members[0].User.Username)
	}
}

func TestListByEvent_EventNotFound(t *testing.T) {
	svc, _, _, _ := newTeamsFixture()

	_, err := svc.ListByEvent(context.Background(), "event:missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}
