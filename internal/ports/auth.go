package ports

// Package ports defines interfaces (hexagonal ports) for auth and storage
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	"github.com/chorebank/chorebank/internal/domain/auth"
)

// CredentialsInput carries an email/password sign-in attempt.
type CredentialsInput struct {
	Email    string
	Password string
}

// CredentialsProvider verifies an email/password pair against stored
// credentials and returns the authenticated identity.
type CredentialsProvider interface {
	Authenticate(ctx context.Context, in CredentialsInput) (auth.Identity, error)
}

// SSOBeginInput carries inputs for initiating an SSO flow.
type SSOBeginInput struct {
	RedirectURL string
}

// SSOExchangeInput groups parameters for the SSO code/token exchange.
type SSOExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SSOProvider initiates and completes a single-sign-on flow against an IdP.
type SSOProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in SSOBeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in SSOExchangeInput) (auth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess auth.Session) error
	Get(ctx context.Context, id string) (auth.Session, error)
	Delete(ctx context.Context, id string) error
}
