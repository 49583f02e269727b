package pwauth

// Package pwauth provides email/password authentication against stored
// profile credentials.

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/auth"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/ports"
)

// ErrInvalidCredentials is returned for a wrong email or password. Callers
// must not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Provider implements ports.CredentialsProvider with bcrypt hashes stored on
// the profile row.
type Provider struct {
	profiles core.ProfileRepository
}

// NewProvider creates a new password credentials provider.
func NewProvider(profiles core.ProfileRepository) *Provider {
	return &Provider{profiles: profiles}
}

// Authenticate verifies the email/password pair and returns the profile's
// identity. ExpiresAt is left zero; session lifetime is the auth service's
// call.
func (p *Provider) Authenticate(ctx context.Context, in ports.CredentialsInput) (auth.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return auth.Identity{}, ErrInvalidCredentials
	}

	profile, err := p.profiles.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Burn a comparison so a missing account costs the same as a wrong password.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000uGyyR3TYJV5eSJtyxB3mFsjwFMSQG8C6"), []byte(in.Password))
			return auth.Identity{}, ErrInvalidCredentials
		}
		return auth.Identity{}, err
	}

	if profile.PasswordHash == "" {
		return auth.Identity{}, ErrInvalidCredentials
	}
	if compareErr := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); compareErr != nil {
		return auth.Identity{}, ErrInvalidCredentials
	}

	return auth.Identity{
		UserID: profile.ID,
		Name:   profile.Name,
		Email:  profile.Email,
		Role:   profile.Role,
	}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
