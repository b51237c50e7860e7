package config

import (
	"fmt"
	"net/url"
	"regexp"
)

var thumbnailSizeRe = regexp.MustCompile(`^\d+x\d+$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !c.hasGoogleOAuth() {
		return fmt.Errorf("google oauth must be configured (client id and secret)")
	}

	if err := c.Roblox.validate(); err != nil {
		return fmt.Errorf("roblox: %w", err)
	}

	if !thumbnailSizeRe.MatchString(c.Catalog.ThumbnailSize) {
		return fmt.Errorf("catalog.thumbnail_size must look like 768x432 (got %q)", c.Catalog.ThumbnailSize)
	}

	if c.Link.ChallengeTTL <= 0 {
		return fmt.Errorf("link.challenge_ttl must be > 0 (got %v)", c.Link.ChallengeTTL)
	}

	if c.Notify.WebhookURL != "" {
		if _, err := url.ParseRequestURI(c.Notify.WebhookURL); err != nil {
			return fmt.Errorf("notify.webhook_url: %w", err)
		}
	}

	if c.Refresh.Delay < 0 {
		return fmt.Errorf("refresh.delay must be >= 0 (got %v)", c.Refresh.Delay)
	}

	if c.RateLimit.WritesPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit values must be > 0")
	}

	return nil
}

func (c *Config) hasGoogleOAuth() bool {
	return c.Auth.GoogleClientID != "" && c.Auth.GoogleClientSecret != ""
}

func (r *RobloxConfig) validate() error {
	if r.ClientID == "" || r.ClientSecret == "" {
		return fmt.Errorf("client_id and client_secret are required")
	}
	if r.RedirectURI == "" {
		return fmt.Errorf("redirect_uri is required")
	}
	if r.StateTTL <= 0 {
		return fmt.Errorf("state_ttl must be > 0 (got %v)", r.StateTTL)
	}
	return nil
}
