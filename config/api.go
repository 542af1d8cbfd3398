package config

import (
	"strings"
	"time"
)

// APIConfig describes the external inventory REST API the dashboard consumes.
type APIConfig struct {
	// BaseURL is the root of the inventory API (auth and inventory routes hang off it).
	BaseURL string `env:"BASE_URL" envDefault:"http://127.0.0.1:8000"`

	// Timeout bounds each outbound call. Zero disables the client timeout;
	// requests are still canceled when the browser disconnects.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`

	// PageSize is the number of supply rows shown per inventory table page.
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`
}

// Sanitize trims the base URL and clamps the page size.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = "http://127.0.0.1:8000"
	}
	if c.Timeout < 0 {
		c.Timeout = 0
	}
	if c.PageSize < 1 {
		c.PageSize = 10
	}
	if c.PageSize > 100 {
		c.PageSize = 100
	}
}
