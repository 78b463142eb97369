package service

import (
	"context"
	"fmt"
	"time"

	"github.com/anhtong/guild-api/internal/model"
)

// Mock implementations

type mockUserRepo struct {
	users     map[string]*model.User
	nextID    int
	createErr error
	getErr    error
	updateErr error
	deleteErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	user.ID = fmt.Sprintf("user:%d", m.nextID)
	user.CreatedOn = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByDiscordID(ctx context.Context, discordID string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, user := range m.users {
		if user.DiscordID != nil && *user.DiscordID == discordID {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ListByRegion(ctx context.Context, region model.Region) ([]*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*model.User
	for _, user := range m.users {
		if user.Region == region {
			result = append(result, user)
		}
	}
	return result, nil
}

type mockEventRepo struct {
	events    map[string]*model.Event
	teamRepo  *mockTeamRepo
	nextID    int
	createErr error
	getErr    error
}

func newMockEventRepo(teams *mockTeamRepo) *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event), teamRepo: teams}
}

func (m *mockEventRepo) CreateWithTeams(ctx context.Context, event *model.Event, teams []*model.Team) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	event.ID = fmt.Sprintf("event:%d", m.nextID)
	m.events[event.ID] = event
	if m.teamRepo != nil {
		for _, team := range teams {
			team.EventID = event.ID
			if err := m.teamRepo.Create(ctx, team); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.events[id], nil
}

func (m *mockEventRepo) GetLatestByRegion(ctx context.Context, region model.Region) (*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var latest *model.Event
	for _, event := range m.events {
		if event.Region != region {
			continue
		}
		if latest == nil || event.CreatedOn.After(latest.CreatedOn) {
			latest = event
		}
	}
	return latest, nil
}

func (m *mockEventRepo) GetByRegionAndWeek(ctx context.Context, region model.Region, weekStart time.Time) (*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, event := range m.events {
		if event.Region == region && event.WeekStartDate.Equal(weekStart) {
			return event, nil
		}
	}
	return nil, nil
}

func (m *mockEventRepo) ListByRegion(ctx context.Context, region model.Region) ([]*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*model.Event
	for _, event := range m.events {
		if event.Region == region {
			result = append(result, event)
		}
	}
	return result, nil
}

type memberKey struct {
	teamID string
	userID string
}

type mockTeamRepo struct {
	teams     map[string]*model.Team
	members   map[memberKey]*model.TeamMember
	users     *mockUserRepo
	nextID    int
	createErr error
	getErr    error
}

func newMockTeamRepo(users *mockUserRepo) *mockTeamRepo {
	return &mockTeamRepo{
		teams:   make(map[string]*model.Team),
		members: make(map[memberKey]*model.TeamMember),
		users:   users,
	}
}

func (m *mockTeamRepo) Create(ctx context.Context, team *model.Team) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	team.ID = fmt.Sprintf("team:%d", m.nextID)
	team.CreatedOn = time.Now()
	m.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.teams[id], nil
}

func (m *mockTeamRepo) Update(ctx context.Context, team *model.Team) error {
	m.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) Delete(ctx context.Context, id string) error {
	delete(m.teams, id)
	for key := range m.members {
		if key.teamID == id {
			delete(m.members, key)
		}
	}
	return nil
}

func (m *mockTeamRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Team, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*model.Team
	for _, team := range m.teams {
		if team.EventID == eventID {
			result = append(result, team)
		}
	}
	return result, nil
}

func (m *mockTeamRepo) GetMember(ctx context.Context, teamID, userID string) (*model.TeamMember, error) {
	return m.members[memberKey{teamID, userID}], nil
}

func (m *mockTeamRepo) AddMember(ctx context.Context, member *model.TeamMember) error {
	member.AssignedOn = time.Now()
	m.members[memberKey{member.TeamID, member.UserID}] = member
	return nil
}

func (m *mockTeamRepo) RemoveMember(ctx context.Context, teamID, userID string) error {
	delete(m.members, memberKey{teamID, userID})
	return nil
}

func (m *mockTeamRepo) ListMembers(ctx context.Context, teamID string) ([]*model.TeamMemberWithUser, error) {
	var result []*model.TeamMemberWithUser
	for key, member := range m.members {
		if key.teamID != teamID {
			continue
		}
		entry := &model.TeamMemberWithUser{AssignedOn: member.AssignedOn}
		if m.users != nil {
			entry.User = m.users.users[key.userID]
		}
		result = append(result, entry)
	}
	return result, nil
}

type signupKey struct {
	eventID string
	userID  string
}

type mockSignupRepo struct {
	signups   map[signupKey]*model.EventSignup
	users     *mockUserRepo
	createErr error
	getErr    error
}

func newMockSignupRepo(users *mockUserRepo) *mockSignupRepo {
	return &mockSignupRepo{signups: make(map[signupKey]*model.EventSignup), users: users}
}

func (m *mockSignupRepo) Create(ctx context.Context, signup *model.EventSignup) error {
	if m.createErr != nil {
		return m.createErr
	}
	signup.SignedUpOn = time.Now()
	m.signups[signupKey{signup.EventID, signup.UserID}] = signup
	return nil
}

func (m *mockSignupRepo) Update(ctx context.Context, eventID, userID string, slots []model.TimeSlot, notes *string) error {
	signup, ok := m.signups[signupKey{eventID, userID}]
	if !ok {
		return nil
	}
	signup.TimeSlots = slots
	signup.Notes = notes
	return nil
}

func (m *mockSignupRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*model.EventSignup, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.signups[signupKey{eventID, userID}], nil
}

func (m *mockSignupRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.SignupWithUser, error) {
	var result []*model.SignupWithUser
	for key, signup := range m.signups {
		if key.eventID != eventID {
			continue
		}
		entry := &model.SignupWithUser{EventSignup: *signup}
		if m.users != nil {
			entry.User = m.users.users[key.userID]
		}
		result = append(result, entry)
	}
	return result, nil
}

type mockScheduleRepo struct {
	notifications map[string]*model.ScheduledNotification
	nextID        int
	createErr     error
	getErr        error
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{notifications: make(map[string]*model.ScheduledNotification)}
}

func (m *mockScheduleRepo) Create(ctx context.Context, n *model.ScheduledNotification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	n.ID = fmt.Sprintf("scheduled_notification:%d", m.nextID)
	n.CreatedOn = time.Now()
	m.notifications[n.ID] = n
	return nil
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id string) (*model.ScheduledNotification, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.notifications[id], nil
}

func (m *mockScheduleRepo) List(ctx context.Context) ([]*model.ScheduledNotification, error) {
	var result []*model.ScheduledNotification
	for _, n := range m.notifications {
		result = append(result, n)
	}
	return result, nil
}

func (m *mockScheduleRepo) ListByRegion(ctx context.Context, region model.Region) ([]*model.ScheduledNotification, error) {
	var result []*model.ScheduledNotification
	for _, n := range m.notifications {
		if n.Region == region {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) Update(ctx context.Context, n *model.ScheduledNotification) error {
	m.notifications[n.ID] = n
	return nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id string) error {
	delete(m.notifications, id)
	return nil
}

// Fixtures

func validSignupRequest(username string, region model.Region) *model.SignupRequest {
	return &model.SignupRequest{
		Username:     username,
		Region:       region,
		PrimaryClass: []model.Class{model.ClassStrategicSword, model.ClassInkwellFan},
		PrimaryRole:  model.RoleDPS,
		TimeSlots:    []model.TimeSlot{model.SlotEvening},
	}
}

func seedEvent(repo *mockEventRepo, region model.Region, weekStart time.Time) *model.Event {
	event := &model.Event{
		Region:        region,
		WeekStartDate: weekStart,
		CreatedOn:     time.Now(),
	}
	_ = repo.CreateWithTeams(context.Background(), event, nil)
	return event
}
