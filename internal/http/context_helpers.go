package httpx

import (
	"context"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
)

// authStateKey is an unexported context key type to avoid collisions across packages.
type authStateKey struct{}

// authState is the per-request result of reading the token cookie.
// A nil Session means anonymous; Token is only kept when it derived to a Session.
type authState struct {
	Token   string
	Session *domainauth.Session
}

func withAuthState(ctx context.Context, st *authState) context.Context {
	if st == nil {
		return ctx
	}
	return context.WithValue(ctx, authStateKey{}, st)
}

func authStateFromContext(ctx context.Context) (*authState, bool) {
	st, ok := ctx.Value(authStateKey{}).(*authState)
	return st, ok && st != nil
}

// GetSessionFromContext returns the signed-in session, or nil for anonymous requests.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if st, ok := authStateFromContext(ctx); ok {
		return st.Session
	}
	return nil
}

// GetTokenFromContext returns the bearer token the session was derived from.
func GetTokenFromContext(ctx context.Context) string {
	if st, ok := authStateFromContext(ctx); ok && st.Session != nil {
		return st.Token
	}
	return ""
}

// IsAdmin reports whether the request carries an admin session.
func IsAdmin(ctx context.Context) bool {
	s := GetSessionFromContext(ctx)
	return s != nil && s.IsAdmin()
}

type requestIDKey struct{}

// GetRequestID returns the id assigned by the RequestID middleware.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
