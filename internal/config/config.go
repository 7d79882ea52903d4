// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"net/mail"
	"os"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	DBPath         string
	ResendAPIKey   string
	OwnerEmail     string
	MailFrom       string
	SiteName       string
	GitHubUsername string
	GitHubToken    string
}

// MailEnabled returns true when a Resend API key is configured. Without a key
// the contact pipeline persists submissions but skips both email dispatches.
func (c *Config) MailEnabled() bool {
	return c.ResendAPIKey != ""
}

// HasSocialSource returns true when a GitHub username is configured for the
// social feed. Without one the feed serves fixture data.
func (c *Config) HasSocialSource() bool {
	return c.GitHubUsername != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// Everything is optional: PORTFOLIO_RESEND_API_KEY gates outbound mail and
// PORTFOLIO_GITHUB_USERNAME gates the live social feed. Variables with defaults:
// PORTFOLIO_LISTEN_ADDR (127.0.0.1:8080), PORTFOLIO_DB_PATH (portfolio.db),
// PORTFOLIO_OWNER_EMAIL, PORTFOLIO_MAIL_FROM, PORTFOLIO_SITE_NAME.
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("PORTFOLIO_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "portfolio.db"
	if v, ok := os.LookupEnv("PORTFOLIO_DB_PATH"); ok {
		dbPath = v
	}

	ownerEmail := "kavyapatel1952007@gmail.com"
	if v, ok := os.LookupEnv("PORTFOLIO_OWNER_EMAIL"); ok && v != "" {
		if _, err := mail.ParseAddress(v); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_OWNER_EMAIL has invalid address %q: %w", v, err)
		}
		ownerEmail = v
	}

	mailFrom := "Portfolio Contact <onboarding@resend.dev>"
	if v, ok := os.LookupEnv("PORTFOLIO_MAIL_FROM"); ok && v != "" {
		if _, err := mail.ParseAddress(v); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_MAIL_FROM has invalid address %q: %w", v, err)
		}
		mailFrom = v
	}

	siteName := "kavyapatel.dev"
	if v, ok := os.LookupEnv("PORTFOLIO_SITE_NAME"); ok && v != "" {
		siteName = v
	}

	return &Config{
		ListenAddr:     listenAddr,
		DBPath:         dbPath,
		ResendAPIKey:   os.Getenv("PORTFOLIO_RESEND_API_KEY"),
		OwnerEmail:     ownerEmail,
		MailFrom:       mailFrom,
		SiteName:       siteName,
		GitHubUsername: os.Getenv("PORTFOLIO_GITHUB_USERNAME"),
		GitHubToken:    os.Getenv("PORTFOLIO_GITHUB_TOKEN"),
	}, nil
}
