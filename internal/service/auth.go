package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chorebank/chorebank/config"
	"github.com/chorebank/chorebank/internal/adapters/pwauth"
	"github.com/chorebank/chorebank/internal/core"
	domainauth "github.com/chorebank/chorebank/internal/domain/auth"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/ports"
)

const minPasswordLen = 8

// ErrSessionExpired is returned when a session exists but is past its expiry.
var ErrSessionExpired = errors.New("session expired")

// ErrInvalidSignupCode is returned when the sign-up gate rejects the code.
var ErrInvalidSignupCode = errors.New("invalid signup code")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialsProvider
	SSO         ports.SSOProvider // nil when SSO is not configured
	Sessions    ports.SessionStore
	Profiles    core.ProfileRepository
	Config      config.AuthConfig
}

// AuthService orchestrates sign-up, password login, SSO login and session
// lifecycle.
type AuthService struct {
	credentials ports.CredentialsProvider
	sso         ports.SSOProvider
	sessions    ports.SessionStore
	profiles    core.ProfileRepository
	cfg         config.AuthConfig
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		credentials: opts.Credentials,
		sso:         opts.SSO,
		sessions:    opts.Sessions,
		profiles:    opts.Profiles,
		cfg:         opts.Config,
	}
}

// SignupInput groups parameters for Signup.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Code     string
}

// Signup registers a new profile and opens a session for it. When a sign-up
// code is configured it must match; addresses on the admin list join with
// the admin role.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domainauth.Session, error) {
	if s.cfg.SignupCode != "" && in.Code != s.cfg.SignupCode {
		return nil, ErrInvalidSignupCode
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperrors.ValidationField("password", fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	hash, err := pwauth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile, err := s.profiles.Create(ctx, &model.CreateProfileRequest{
		Name:         in.Name,
		Email:        in.Email,
		Role:         s.roleForEmail(in.Email),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, domainauth.Identity{
		UserID: profile.ID,
		Name:   profile.Name,
		Email:  profile.Email,
		Role:   profile.Role,
	})
}

// Login verifies an email/password pair and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	identity, err := s.credentials.Authenticate(ctx, ports.CredentialsInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, identity)
}

// SSOEnabled reports whether an SSO provider is configured.
func (s *AuthService) SSOEnabled() bool { return s.sso != nil }

// BeginSSOResult contains the result of beginning an SSO flow.
type BeginSSOResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginSSO initiates the SSO flow and returns the provider auth URL with
// state and nonce for the callback.
func (s *AuthService) BeginSSO(ctx context.Context, redirectURL string) (*BeginSSOResult, error) {
	if s.sso == nil {
		return nil, apperrors.NotFound("single sign-on is not configured")
	}

	authURL, state, nonce, err := s.sso.Begin(ctx, ports.SSOBeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin sso flow: %w", err)
	}
	return &BeginSSOResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteSSOInput groups parameters for CompleteSSO.
type CompleteSSOInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteSSO exchanges the callback code for an identity, resolves it to a
// local profile (creating one on first login) and opens a session.
func (s *AuthService) CompleteSSO(ctx context.Context, in CompleteSSOInput) (*domainauth.Session, error) {
	if s.sso == nil {
		return nil, apperrors.NotFound("single sign-on is not configured")
	}
	if in.Code == "" {
		return nil, apperrors.Validation("authorization code is required")
	}
	if in.State == "" {
		return nil, apperrors.Validation("state parameter is required")
	}

	identity, err := s.sso.Exchange(ctx, ports.SSOExchangeInput{
		Code:  in.Code,
		State: in.State,
		Nonce: in.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	profile, err := s.resolveSSOProfile(ctx, identity)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, domainauth.Identity{
		UserID: profile.ID,
		Name:   profile.Name,
		Email:  profile.Email,
		Role:   profile.Role,
	})
}

// resolveSSOProfile finds the local profile for a federated identity,
// creating it on first login. SSO profiles have no local password.
func (s *AuthService) resolveSSOProfile(ctx context.Context, identity domainauth.Identity) (*model.Profile, error) {
	profile, err := s.profiles.GetByEmail(ctx, identity.Email)
	if err == nil {
		return profile, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	name := identity.Name
	if name == "" {
		name = identity.Email
	}
	return s.profiles.Create(ctx, &model.CreateProfileRequest{
		Name:  name,
		Email: identity.Email,
		Role:  s.roleForEmail(identity.Email),
	})
}

// GetSession retrieves a session by ID, evicting it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) openSession(ctx context.Context, identity domainauth.Identity) (*domainauth.Session, error) {
	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      identity.Role,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// roleForEmail grants admin to configured addresses, member to everyone else.
func (s *AuthService) roleForEmail(email string) model.Role {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range s.cfg.AdminEmails {
		if strings.ToLower(strings.TrimSpace(admin)) == email {
			return model.RoleAdmin
		}
	}
	return model.RoleMember
}
