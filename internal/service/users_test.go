package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anhtong/guild-api/internal/model"
)

func newUsersFixture() (*UsersService, *mockUserRepo) {
	users := newMockUserRepo()
	return NewUsersService(users), users
}

func classPatch(a, b model.Class) []model.Class {
	return []model.Class{a, b}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestUpdateUser_SelfUpdate(t *testing.T) {
	svc, users := newUsersFixture()
	player := seedPlayer(users, "player", model.RegionVN)
	player.PrimaryClass = classPatch(model.ClassStrategicSword, model.ClassInkwellFan)
	player.PrimaryRole = model.RoleDPS

	actor := Actor{UserID: player.ID, Username: "player", Region: model.RegionVN}
	role := model.RoleHealer
	updated, err := svc.Update(context.Background(), actor, player.ID, &model.UpdateUserRequest{
		PrimaryRole: &role,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PrimaryRole != model.RoleHealer {
		t.Errorf("expected primary role healer, got %s", updated.PrimaryRole)
	}
	// Untouched fields stay as they were.
	if len(updated.PrimaryClass) != 2 {
		t.Errorf("expected primary classes untouched, got %v", updated.PrimaryClass)
	}
}

func TestUpdateUser_NonAdminCannotUpdateOthers(t *testing.T) {
	svc, users := newUsersFixture()
	player := seedPlayer(users, "player", model.RegionVN)
	other := seedPlayer(users, "other", model.RegionVN)

	actor := Actor{UserID: player.ID, Region: model.RegionVN}
	role := model.RoleTank
	_, err := svc.Update(context.Background(), actor, other.ID, &model.UpdateUserRequest{
		PrimaryRole: &role,
	})
	if !errors.Is(err, ErrCannotUpdateOthers) {
		t.Errorf("expected ErrCannotUpdateOthers, got %v", err)
	}
}

func TestUpdateUser_AdminOtherRegionSeesNotFound(t *testing.T) {
	svc, users := newUsersFixture()
	admin := seedPlayer(users, "adminvn", model.RegionVN)
	admin.IsAdmin = true
	outsider := seedPlayer(users, "outsider", model.RegionNA)

	actor := Actor{UserID: admin.ID, Region: model.RegionVN, IsAdmin: true}
	role := model.RoleTank
	_, err := svc.Update(context.Background(), actor, outsider.ID, &model.UpdateUserRequest{
		PrimaryRole: &role,
	})
	if !errors.Is(err, ErrUserNotFoundOrRegion) {
		t.Errorf("expected ErrUserNotFoundOrRegion, got %v", err)
	}
}

func TestUpdateUser_AdminSameRegion(t *testing.T) {
	svc, users := newUsersFixture()
	admin := seedPlayer(users, "adminvn", model.RegionVN)
	admin.IsAdmin = true
	player := seedPlayer(users, "player", model.RegionVN)

	actor := Actor{UserID: admin.ID, Region: model.RegionVN, IsAdmin: true}
	updated, err := svc.Update(context.Background(), actor, player.ID, &model.UpdateUserRequest{
		PrimaryClass: classPatch(model.ClassNamelessSword, model.ClassPanaceaFan),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PrimaryClass[0] != model.ClassNamelessSword {
		t.Errorf("expected patched classes, got %v", updated.PrimaryClass)
	}
}

func TestUpdateUser_EmptySecondaryClassClears(t *testing.T) {
	svc, users := newUsersFixture()
	player := seedPlayer(users, "player", model.RegionVN)
	player.SecondaryClass = classPatch(model.ClassThundercryBlade, model.ClassMortalRopeDart)

	actor := Actor{UserID: player.ID, Region: model.RegionVN}
	updated, err := svc.Update(context.Background(), actor, player.ID, &model.UpdateUserRequest{
		SecondaryClass: []model.Class{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.SecondaryClass != nil {
		t.Errorf("expected secondary classes cleared, got %v", updated.SecondaryClass)
	}
}

func TestUpdateUser_InvalidPatch(t *testing.T) {
	svc, users := newUsersFixture()
	player := seedPlayer(users, "player", model.RegionVN)

	actor := Actor{UserID: player.ID, Region: model.RegionVN}
	_, err := svc.Update(context.Background(), actor, player.ID, &model.UpdateUserRequest{
		PrimaryClass: []model.Class{model.ClassStrategicSword}, // must be a pair
	})
	var pd *model.ProblemDetails
	if !errors.As(err, &pd) {
		t.Fatalf("expected ProblemDetails, got %v", err)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestDeleteUser_RegionScoped(t *testing.T) {
	svc, users := newUsersFixture()
	outsider := seedPlayer(users, "outsider", model.RegionNA)

	actor := Actor{UserID: "user:admin", Region: model.RegionVN, IsAdmin: true}
	err := svc.Delete(context.Background(), actor, outsider.ID)
	if !errors.Is(err, ErrUserNotFoundOrRegion) {
		t.Errorf("expected ErrUserNotFoundOrRegion, got %v", err)
	}
}

func TestDeleteUser_SameRegion(t *testing.T) {
	svc, users := newUsersFixture()
	player := seedPlayer(users, "player", model.RegionVN)

	actor := Actor{UserID: "user:admin", Region: model.RegionVN, IsAdmin: true}
	if err := svc.Delete(context.Background(), actor, player.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := users.users[player.ID]; ok {
		t.Error("expected user to be deleted")
	}
}

// ============================================================================
// List / Get Tests
// ============================================================================

func TestListUsers_InvalidRegion(t *testing.T) {
	svc, _ := newUsersFixture()

	_, err := svc.List(context.Background(), model.Region("eu"))
	if !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("expected ErrInvalidRegion, got %v", err)
	}
}

func TestListUsers_FiltersByRegion(t *testing.T) {
	svc, users := newUsersFixture()
	seedPlayer(users, "vn1", model.RegionVN)
	seedPlayer(users, "vn2", model.RegionVN)
	seedPlayer(users, "na1", model.RegionNA)

	result, err := svc.List(context.Background(), model.RegionVN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("expected 2 users, got %d", len(result))
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := newUsersFixture()

	_, err := svc.Get(context.Background(), "user:missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
