package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthConfig_Sanitize_ClampsSessionTTL(t *testing.T) {
	t.Parallel()

	cfg := AuthConfig{SessionTTL: time.Second}
	cfg.Sanitize()
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)

	cfg = AuthConfig{SessionTTL: 365 * 24 * time.Hour}
	cfg.Sanitize()
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)

	cfg = AuthConfig{SessionTTL: 168 * time.Hour}
	cfg.Sanitize()
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
}

func TestHTTPConfig_Sanitize_ClampsChangeWait(t *testing.T) {
	t.Parallel()

	cfg := HTTPConfig{ChangeWaitSeconds: 0}
	cfg.Sanitize()
	assert.Equal(t, 1, cfg.ChangeWaitSeconds)

	cfg = HTTPConfig{ChangeWaitSeconds: 600}
	cfg.Sanitize()
	assert.Equal(t, 120, cfg.ChangeWaitSeconds)
}

func TestOIDCConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, OIDCConfig{}.Enabled())
	assert.True(t, OIDCConfig{DiscoveryURL: "https://idp.example.com"}.Enabled())
}

func TestAppConfig_IsHTTPServerEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, (&AppConfig{Services: "http"}).IsHTTPServerEnabled())
	assert.True(t, (&AppConfig{Services: " http , other"}).IsHTTPServerEnabled())
	assert.False(t, (&AppConfig{Services: "none"}).IsHTTPServerEnabled())
	assert.False(t, (&AppConfig{}).IsHTTPServerEnabled())
}
