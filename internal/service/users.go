package service

import (
	"context"

	"github.com/anhtong/guild-api/internal/model"
)

// UsersService handles user profile management
type UsersService struct {
	users UserRepository
}

// NewUsersService creates a new users service
func NewUsersService(users UserRepository) *UsersService {
	return &UsersService{users: users}
}

// Update applies a sparse patch to a user's class and role preferences.
// Users may always update themselves; updating anyone else requires an
// admin of the target's region. Nil patch fields are left untouched.
func (s *UsersService) Update(ctx context.Context, actor Actor, targetID string, req *model.UpdateUserRequest) (*model.User, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if actor.UserID != targetID {
		if !actor.IsAdmin {
			return nil, ErrCannotUpdateOthers
		}
		// Admins see other regions' users as absent, not forbidden.
		if target == nil || target.Region != actor.Region {
			return nil, ErrUserNotFoundOrRegion
		}
	} else if target == nil {
		return nil, ErrUserNotFound
	}

	if req.PrimaryClass != nil {
		target.PrimaryClass = req.PrimaryClass
	}
	if req.SecondaryClass != nil {
		if len(req.SecondaryClass) == 0 {
			target.SecondaryClass = nil
		} else {
			target.SecondaryClass = req.SecondaryClass
		}
	}
	if req.PrimaryRole != nil {
		target.PrimaryRole = *req.PrimaryRole
	}
	if req.SecondaryRole != nil {
		target.SecondaryRole = req.SecondaryRole
	}

	if err := s.users.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes a user in the caller's region along with their team
// memberships and signups.
func (s *UsersService) Delete(ctx context.Context, actor Actor, targetID string) error {
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil || target.Region != actor.Region {
		return ErrUserNotFoundOrRegion
	}
	return s.users.Delete(ctx, target.ID)
}

// List retrieves a region's users.
func (s *UsersService) List(ctx context.Context, region model.Region) ([]*model.User, error) {
	if !region.Valid() {
		return nil, ErrInvalidRegion
	}
	return s.users.ListByRegion(ctx, region)
}

// Get retrieves one user's profile.
func (s *UsersService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
