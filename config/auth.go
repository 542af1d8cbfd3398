package config

import (
	"strings"
	"time"
)

// DefaultTokenCookieName is the cookie the inventory API sets on login.
const DefaultTokenCookieName = "access_token"

// ClaimsConfig maps decoded token payload fields onto session fields.
// Each value is a JMESPath expression evaluated against the payload object.
type ClaimsConfig struct {
	Username  string `env:"USERNAME"   envDefault:"username || sub"`
	FirstName string `env:"FIRST_NAME" envDefault:"first_name"`
	LastName  string `env:"LAST_NAME"  envDefault:"last_name"`
	Role      string `env:"ROLE"       envDefault:"role"`
}

// AuthConfig groups token cookie handling and claim mapping.
type AuthConfig struct {
	// CookieName is the name of the cookie holding the bearer token.
	CookieName string `env:"COOKIE_NAME" envDefault:"access_token"`

	// CookieTTL is used for the token cookie when the token carries no exp claim.
	CookieTTL time.Duration `env:"COOKIE_TTL" envDefault:"30m"`

	// CookieHTTPOnly hides the token cookie from page scripts.
	CookieHTTPOnly bool `env:"COOKIE_HTTP_ONLY" envDefault:"true"`

	Claims ClaimsConfig `envPrefix:"CLAIM_"`
}

// Sanitize restores defaults for blank values.
func (c *AuthConfig) Sanitize() {
	c.CookieName = strings.TrimSpace(c.CookieName)
	if c.CookieName == "" {
		c.CookieName = DefaultTokenCookieName
	}
	if c.CookieTTL <= 0 {
		c.CookieTTL = 30 * time.Minute
	}
	c.Claims.sanitize()
}

func (c *ClaimsConfig) sanitize() {
	defaults := ClaimsConfig{
		Username:  "username || sub",
		FirstName: "first_name",
		LastName:  "last_name",
		Role:      "role",
	}
	if c.Username = strings.TrimSpace(c.Username); c.Username == "" {
		c.Username = defaults.Username
	}
	if c.FirstName = strings.TrimSpace(c.FirstName); c.FirstName == "" {
		c.FirstName = defaults.FirstName
	}
	if c.LastName = strings.TrimSpace(c.LastName); c.LastName == "" {
		c.LastName = defaults.LastName
	}
	if c.Role = strings.TrimSpace(c.Role); c.Role == "" {
		c.Role = defaults.Role
	}
}
