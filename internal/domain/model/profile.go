package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const maxProfileNameLen = 100

// Role is a profile's permission level.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is supported.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// Profile is a household member. Money is the running net-earnings balance:
// the arithmetic sum of approved payouts minus punishment amounts, mutated in
// place by settlements.
type Profile struct {
	ID           string    `json:"id"         db:"id"`
	Name         string    `json:"name"       db:"name"`
	Email        string    `json:"email"      db:"email"`
	Money        int64     `json:"money"      db:"money"`
	Role         Role      `json:"role"       db:"role"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CreateProfileRequest represents parameters to create a Profile.
type CreateProfileRequest struct {
	Name         string
	Email        string
	Role         Role
	PasswordHash string
}

// Validate validates CreateProfileRequest.
func (r *CreateProfileRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Name) > maxProfileNameLen {
		return errors.New("name cannot exceed 100 characters")
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email is not a valid address")
	}
	if r.Role == "" {
		r.Role = RoleMember
	}
	if !r.Role.Valid() {
		return errors.New("role must be member or admin")
	}
	return nil
}

// DisplayName returns the chart label for a profile: names longer than
// 15 runes are truncated with an ellipsis. Collisions are display-only;
// profiles stay keyed by id everywhere else.
func (p *Profile) DisplayName() string {
	const maxLabel = 15
	if utf8.RuneCountInString(p.Name) <= maxLabel {
		return p.Name
	}
	runes := []rune(p.Name)
	return string(runes[:maxLabel]) + "..."
}
