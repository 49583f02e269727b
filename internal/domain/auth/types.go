package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"time"

	"github.com/chorebank/chorebank/internal/domain/model"
)

// Identity represents an authenticated principal. Adapters (password login,
// OIDC) map their provider-specific shapes into this one.
type Identity struct {
	UserID    string // profile id
	Name      string
	Email     string
	Role      model.Role
	ExpiresAt time.Time
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (random URL-safe string).
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// IsAdmin returns true if the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.Role == model.RoleAdmin }
