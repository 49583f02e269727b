package service

import (
	"context"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	ProfileRepo core.ProfileRepository
}

// ProfileService exposes profile reads and admin-side role management.
// Profile creation normally goes through the auth service at sign-up.
type ProfileService struct {
	profiles core.ProfileRepository
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	return &ProfileService{profiles: opts.ProfileRepo}
}

// GetByID retrieves a profile by ID.
func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]*model.Profile, error) {
	return s.profiles.List(ctx)
}

// SetRole changes a profile's role.
func (s *ProfileService) SetRole(ctx context.Context, id string, role model.Role) (*model.Profile, error) {
	return s.profiles.SetRole(ctx, id, role)
}

// Delete removes a profile together with its assignments and punishments.
func (s *ProfileService) Delete(ctx context.Context, id string) (bool, error) {
	return s.profiles.Delete(ctx, id)
}
