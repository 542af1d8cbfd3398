package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/sustainastock/sustainastock-ui/config"
	httpx "github.com/sustainastock/sustainastock-ui/internal/http"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

// AuthConfig contains configuration for the auth wiring.
type AuthConfig struct {
	Auth         config.AuthConfig
	CookieDomain string
	API          ports.AuthAPI
	Logger       *slog.Logger
}

// AuthBundle is the session side of the container.
type AuthBundle struct {
	Sessions *service.SessionService
	Service  *service.AuthService
	Context  *httpx.AuthContext
}

// BuildAuth compiles the claim expressions and wires the token cookie, the
// session deriver and the login/register service. A bad claim expression is a
// startup error.
func BuildAuth(cfg AuthConfig) (AuthBundle, error) {
	sessions, err := service.NewSessionService(service.SessionServiceOptions{
		Claims: service.ClaimExpressions{
			Username:  cfg.Auth.Claims.Username,
			FirstName: cfg.Auth.Claims.FirstName,
			LastName:  cfg.Auth.Claims.LastName,
			Role:      cfg.Auth.Claims.Role,
		},
		Logger: cfg.Logger,
	})
	if err != nil {
		return AuthBundle{}, fmt.Errorf("build session service: %w", err)
	}

	authCtx := httpx.NewAuthContext(httpx.AuthContextOptions{
		Tokens:    httpx.NewTokenStore(cfg.Auth.CookieName, cfg.CookieDomain, cfg.Auth.CookieHTTPOnly),
		Sessions:  sessions,
		CookieTTL: cfg.Auth.CookieTTL,
		Logger:    cfg.Logger,
	})

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		API:      cfg.API,
		Sessions: sessions,
		Logger:   cfg.Logger,
	})

	return AuthBundle{Sessions: sessions, Service: authSvc, Context: authCtx}, nil
}
