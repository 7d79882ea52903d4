package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PORTFOLIO_ env var that Load() reads.
var allConfigKeys = []string{
	"PORTFOLIO_LISTEN_ADDR",
	"PORTFOLIO_DB_PATH",
	"PORTFOLIO_RESEND_API_KEY",
	"PORTFOLIO_OWNER_EMAIL",
	"PORTFOLIO_MAIL_FROM",
	"PORTFOLIO_SITE_NAME",
	"PORTFOLIO_GITHUB_USERNAME",
	"PORTFOLIO_GITHUB_TOKEN",
}

// isolateConfigEnv saves and unsets all PORTFOLIO_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "kavyapatel1952007@gmail.com", cfg.OwnerEmail)
	assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", cfg.MailFrom)
	assert.Equal(t, "kavyapatel.dev", cfg.SiteName)
	assert.False(t, cfg.MailEnabled())
	assert.False(t, cfg.HasSocialSource())
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("PORTFOLIO_DB_PATH", "/tmp/test.db")
	t.Setenv("PORTFOLIO_RESEND_API_KEY", "re_test123")
	t.Setenv("PORTFOLIO_OWNER_EMAIL", "owner@example.com")
	t.Setenv("PORTFOLIO_GITHUB_USERNAME", "kavyadev")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "re_test123", cfg.ResendAPIKey)
	assert.Equal(t, "owner@example.com", cfg.OwnerEmail)
	assert.True(t, cfg.MailEnabled())
	assert.True(t, cfg.HasSocialSource())
}

func TestLoad_InvalidOwnerEmail(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_OWNER_EMAIL", "not-an-address")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_OWNER_EMAIL")
}

func TestLoad_InvalidMailFrom(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_MAIL_FROM", "<<broken")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_MAIL_FROM")
}

// TestLoad_EmptyResendKey verifies that an empty key does not error, it only
// disables outbound mail.
func TestLoad_EmptyResendKey(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_RESEND_API_KEY", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.MailEnabled())
}
