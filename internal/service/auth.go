package service

import (
	"context"
	"strings"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/pkg/token"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByDiscordID(ctx context.Context, discordID string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	ListByRegion(ctx context.Context, region model.Region) ([]*model.User, error)
}

// SignupRepository defines the interface for event signup storage
type SignupRepository interface {
	Create(ctx context.Context, signup *model.EventSignup) error
	Update(ctx context.Context, eventID, userID string, slots []model.TimeSlot, notes *string) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*model.EventSignup, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.SignupWithUser, error)
}

// Actor is the authenticated caller as seen by the services.
type Actor struct {
	UserID   string
	Username string
	Region   model.Region
	IsAdmin  bool
}

// AuthService handles admin login and event signups
type AuthService struct {
	users   UserRepository
	events  EventRepository
	signups SignupRepository
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo   UserRepository
	EventRepo  EventRepository
	SignupRepo SignupRepository
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		users:   cfg.UserRepo,
		events:  cfg.EventRepo,
		signups: cfg.SignupRepo,
	}
}

// LoginResult represents a successful login
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login authenticates an admin with username/password.
// Only admin accounts carry a password; everyone else fails with the same
// ErrInvalidCredentials to avoid leaking which usernames exist.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.Hash == nil || *user.Hash == "" {
		return nil, ErrInvalidCredentials
	}
	if !user.IsAdmin {
		return nil, ErrInvalidCredentials
	}
	if !token.CheckPassword(req.Password, *user.Hash) {
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{
		Token: token.Generate(token.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Region:   string(user.Region),
			IsAdmin:  user.IsAdmin,
		}),
		User: user,
	}, nil
}

// SignupResult represents a completed event signup
type SignupResult struct {
	Message string       `json:"message"`
	User    *model.User  `json:"user"`
	Event   *model.Event `json:"event"`
	Updated bool         `json:"updated"`
}

// identityResolver locates the existing account a signup belongs to, if any.
// The plain and Discord signup flows differ only in how they resolve identity.
type identityResolver func(ctx context.Context) (*model.User, error)

// Signup registers a player for the latest event in their region.
// Re-signing up replaces the earlier time slots and notes; the Updated flag
// tells the handler whether to answer 200 instead of 201.
func (s *AuthService) Signup(ctx context.Context, req *model.SignupRequest) (*SignupResult, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	return s.signup(ctx, req, nil, s.resolveByUsername(req.Username))
}

// DiscordSignup registers a player through the Discord bot. The account is
// resolved by Discord id or username; if the two resolve to different
// accounts the signup is rejected rather than silently merged.
func (s *AuthService) DiscordSignup(ctx context.Context, req *model.DiscordSignupRequest) (*SignupResult, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	discordID := strings.TrimSpace(req.DiscordID)
	return s.signup(ctx, &req.SignupRequest, &discordID, s.resolveByDiscordOrUsername(discordID, req.Username))
}

func (s *AuthService) signup(ctx context.Context, req *model.SignupRequest, discordID *string, resolve identityResolver) (*SignupResult, error) {
	event, err := s.events.GetLatestByRegion(ctx, req.Region)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNoEventForRegion
	}

	user, err := resolve(ctx)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if user != nil {
		if user.Region != req.Region {
			return nil, ErrRegionConflict
		}
		user.Username = username
		user.PrimaryClass = req.PrimaryClass
		user.SecondaryClass = req.SecondaryClass
		user.PrimaryRole = req.PrimaryRole
		user.SecondaryRole = req.SecondaryRole
		if discordID != nil {
			user.DiscordID = discordID
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user = &model.User{
			Username:       username,
			DiscordID:      discordID,
			Region:         req.Region,
			PrimaryClass:   req.PrimaryClass,
			SecondaryClass: req.SecondaryClass,
			PrimaryRole:    req.PrimaryRole,
			SecondaryRole:  req.SecondaryRole,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	existing, err := s.signups.GetByEventAndUser(ctx, event.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.signups.Update(ctx, event.ID, user.ID, req.TimeSlots, req.Notes); err != nil {
			return nil, err
		}
		return &SignupResult{
			Message: "Signup updated",
			User:    user,
			Event:   event,
			Updated: true,
		}, nil
	}

	signup := &model.EventSignup{
		EventID:   event.ID,
		UserID:    user.ID,
		TimeSlots: req.TimeSlots,
		Notes:     req.Notes,
	}
	if err := s.signups.Create(ctx, signup); err != nil {
		return nil, err
	}

	return &SignupResult{
		Message: "Signed up successfully",
		User:    user,
		Event:   event,
		Updated: false,
	}, nil
}

func (s *AuthService) resolveByUsername(username string) identityResolver {
	return func(ctx context.Context) (*model.User, error) {
		return s.users.GetByUsername(ctx, strings.TrimSpace(username))
	}
}

func (s *AuthService) resolveByDiscordOrUsername(discordID, username string) identityResolver {
	return func(ctx context.Context) (*model.User, error) {
		byDiscord, err := s.users.GetByDiscordID(ctx, discordID)
		if err != nil {
			return nil, err
		}
		byName, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
		if err != nil {
			return nil, err
		}
		if byDiscord != nil && byName != nil && byDiscord.ID != byName.ID {
			return nil, ErrIdentityConflict
		}
		if byDiscord != nil {
			return byDiscord, nil
		}
		return byName, nil
	}
}

// GetCurrentUser retrieves the authenticated caller's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
