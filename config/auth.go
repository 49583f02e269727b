package config

import "time"

const (
	minSessionTTL = 15 * time.Minute
	maxSessionTTL = 30 * 24 * time.Hour
)

// OIDCConfig contains optional OIDC single-sign-on configuration.
// SSO is enabled only when DiscoveryURL is set.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/sso/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// Enabled reports whether SSO sign-in is configured.
func (c OIDCConfig) Enabled() bool { return c.DiscoveryURL != "" }

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// SignupCode is the shared secret compared at sign-up time to gate
	// account creation. Leave empty to allow open sign-up.
	SignupCode string `env:"SIGNUP_CODE"`

	// SessionTTL is how long a session stays valid after login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// AdminEmails lists e-mail addresses that are granted the admin role
	// on sign-up or SSO sign-in.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:";"`

	// OIDC configuration for optional SSO sign-in.
	OIDC OIDCConfig `envPrefix:"OIDC_"`
}

// Sanitize clamps session lifetime to a sane range.
func (c *AuthConfig) Sanitize() {
	if c.SessionTTL < minSessionTTL {
		c.SessionTTL = minSessionTTL
	}
	if c.SessionTTL > maxSessionTTL {
		c.SessionTTL = maxSessionTTL
	}
}
