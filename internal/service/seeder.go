package service

import (
	"context"
	"errors"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/pkg/token"
)

// ErrSeedPasswordRequired rejects seeding without a configured password.
var ErrSeedPasswordRequired = errors.New("seed admin password is required")

// Seeder provisions the built-in regional admin accounts.
type Seeder struct {
	users UserRepository
}

// NewSeeder creates a new seeder
func NewSeeder(users UserRepository) *Seeder {
	return &Seeder{users: users}
}

// seedAdmins are the two regional operator accounts, one per region.
var seedAdmins = []struct {
	username string
	region   model.Region
}{
	{"adminvn", model.RegionVN},
	{"adminna", model.RegionNA},
}

// SeedAdmins creates any missing regional admin accounts with the given
// password and returns the usernames created. Existing accounts are left
// untouched, so reseeding is safe.
func (s *Seeder) SeedAdmins(ctx context.Context, password string) ([]string, error) {
	if password == "" {
		return nil, ErrSeedPasswordRequired
	}

	hash, err := token.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var created []string
	for _, admin := range seedAdmins {
		existing, err := s.users.GetByUsername(ctx, admin.username)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		user := &model.User{
			Username: admin.username,
			Hash:     &hash,
			IsAdmin:  true,
			Region:   admin.region,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return created, err
		}
		created = append(created, admin.username)
	}
	return created, nil
}
