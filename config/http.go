package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://chores.example.com").
	// Used for generating absolute URLs for uploaded images.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// ChangeWaitSeconds caps how long a long-poll on /api/changes may block.
	ChangeWaitSeconds int `env:"HTTP_CHANGE_WAIT_SECONDS" envDefault:"30"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.ChangeWaitSeconds < 1 {
		h.ChangeWaitSeconds = 1
	}
	if h.ChangeWaitSeconds > 120 {
		h.ChangeWaitSeconds = 120
	}
}
