package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// ErrEmptyToken is returned by AuthContext.Login when no token is supplied.
var ErrEmptyToken = errors.New("empty token")

// AuthContextOptions groups dependencies for AuthContext.
type AuthContextOptions struct {
	Tokens   *TokenStore
	Sessions ports.SessionDeriver
	// CookieTTL bounds the cookie lifetime when the token carries no exp claim.
	CookieTTL time.Duration
	Logger    *slog.Logger
}

// AuthContext answers who is signed in for the current request. It is built once
// at startup and shared; all state lives in the request's cookie.
type AuthContext struct {
	tokens    *TokenStore
	sessions  ports.SessionDeriver
	cookieTTL time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthContext constructs an AuthContext.
func NewAuthContext(opts AuthContextOptions) *AuthContext {
	if opts.Sessions == nil {
		panic("httpx: SessionDeriver is required")
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = NewTokenStore("", "", true)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthContext{
		tokens:    tokens,
		sessions:  opts.Sessions,
		cookieTTL: opts.CookieTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Session returns the session for the request's cookie, if any.
func (a *AuthContext) Session(r *http.Request) (*domainauth.Session, bool) {
	st := a.resolve(r)
	return st.Session, st.Session != nil
}

// IsAuthenticated reports whether the request holds a token that derives to a session.
func (a *AuthContext) IsAuthenticated(r *http.Request) bool {
	_, ok := a.Session(r)
	return ok
}

// Token returns the held token. It is empty when the cookie does not derive to a session.
func (a *AuthContext) Token(r *http.Request) string {
	return a.resolve(r).Token
}

// Login stores token in the cookie and returns the session it derives to.
// The cookie is only written when derivation succeeds.
func (a *AuthContext) Login(w http.ResponseWriter, r *http.Request, token string) (*domainauth.Session, error) {
	token = domainauth.NormalizeToken(token)
	if token == "" {
		return nil, ErrEmptyToken
	}
	sess, err := a.sessions.Derive(token)
	if err != nil {
		return nil, fmt.Errorf("derive session: %w", err)
	}
	a.tokens.Set(w, r, token, a.cookieExpiry(sess))
	return &sess, nil
}

// Logout clears the token cookie.
func (a *AuthContext) Logout(w http.ResponseWriter, r *http.Request) {
	a.tokens.Clear(w, r)
}

// resolve derives the auth state once per request, reusing the RouteGuard's result.
func (a *AuthContext) resolve(r *http.Request) *authState {
	if st, ok := authStateFromContext(r.Context()); ok {
		return st
	}
	return a.derive(r)
}

func (a *AuthContext) derive(r *http.Request) *authState {
	token, ok := a.tokens.Get(r)
	if !ok {
		return &authState{}
	}
	sess, err := a.sessions.Derive(token)
	if err != nil {
		a.logger.DebugContext(r.Context(), "ignoring undecodable token cookie", "error", err)
		return &authState{}
	}
	return &authState{Token: token, Session: &sess}
}

func (a *AuthContext) cookieExpiry(sess domainauth.Session) time.Time {
	if !sess.ExpiresAt.IsZero() {
		return sess.ExpiresAt
	}
	if a.cookieTTL > 0 {
		return a.now().Add(a.cookieTTL)
	}
	return time.Time{}
}
