package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("expected default api base url, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("expected no api timeout by default, got %v", cfg.API.Timeout)
	}
	if cfg.Auth.CookieName != DefaultTokenCookieName {
		t.Errorf("expected cookie name %q, got %q", DefaultTokenCookieName, cfg.Auth.CookieName)
	}
	if cfg.Flash.Backend != FlashBackendMemory {
		t.Errorf("expected memory flash backend, got %q", cfg.Flash.Backend)
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_COOKIE_NAME", "token")
	t.Setenv("AUTH_COOKIE_TTL", "1h")
	t.Setenv("AUTH_COOKIE_HTTP_ONLY", "false")
	t.Setenv("AUTH_CLAIM_USERNAME", "preferred_username")
	t.Setenv("AUTH_CLAIM_ROLE", "roles[0]")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		CookieName:     "token",
		CookieTTL:      time.Hour,
		CookieHTTPOnly: false,
		Claims: ClaimsConfig{
			Username:  "preferred_username",
			FirstName: "first_name",
			LastName:  "last_name",
			Role:      "roles[0]",
		},
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
}

func TestAppConfig_ParseAPIEnv(t *testing.T) {
	t.Setenv("INVENTORY_API_BASE_URL", " https://api.example.com/ ")
	t.Setenv("INVENTORY_API_TIMEOUT", "15s")
	t.Setenv("INVENTORY_API_PAGE_SIZE", "500")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("expected trimmed base url, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.API.Timeout)
	}
	if cfg.API.PageSize != 100 {
		t.Errorf("expected page size clamped to 100, got %d", cfg.API.PageSize)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Fatal("expected NODE_ENV=development to enable dev mode")
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "below range", level: 0, want: 1},
		{name: "in range", level: 5, want: 5},
		{name: "above range", level: 12, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{CompressionLevel: tt.level}
			cfg.Sanitize()
			if cfg.CompressionLevel != tt.want {
				t.Errorf("expected level %d, got %d", tt.want, cfg.CompressionLevel)
			}
			if cfg.Addr != ":8080" {
				t.Errorf("expected empty addr to default, got %q", cfg.Addr)
			}
		})
	}
}

func TestAuthConfig_SanitizeRestoresDefaults(t *testing.T) {
	cfg := AuthConfig{
		CookieName: "  ",
		Claims:     ClaimsConfig{Username: " ", Role: ""},
	}
	cfg.Sanitize()

	if cfg.CookieName != DefaultTokenCookieName {
		t.Errorf("expected default cookie name, got %q", cfg.CookieName)
	}
	if cfg.CookieTTL != 30*time.Minute {
		t.Errorf("expected default ttl, got %v", cfg.CookieTTL)
	}
	if cfg.Claims.Username != "username || sub" {
		t.Errorf("expected default username expression, got %q", cfg.Claims.Username)
	}
	if cfg.Claims.Role != "role" {
		t.Errorf("expected default role expression, got %q", cfg.Claims.Role)
	}
}

func TestFlashConfig_Sanitize(t *testing.T) {
	cfg := FlashConfig{Backend: "memcached", TTL: -time.Second}
	cfg.Sanitize()

	if cfg.Backend != FlashBackendMemory {
		t.Errorf("expected unknown backend to fall back to memory, got %q", cfg.Backend)
	}
	if cfg.TTL != 2*time.Minute {
		t.Errorf("expected default ttl, got %v", cfg.TTL)
	}
	if cfg.UsesRedis() {
		t.Error("memory backend should not need redis")
	}

	cfg = FlashConfig{Backend: FlashBackendRedis, TTL: time.Minute}
	cfg.Sanitize()
	if !cfg.UsesRedis() {
		t.Error("expected redis backend to need redis")
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
}
