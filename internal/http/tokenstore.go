package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
)

// DefaultTokenCookieName is the cookie the inventory API issues on login.
const DefaultTokenCookieName = "access_token"

// TokenStore reads and writes the bearer token cookie.
type TokenStore struct {
	Name     string
	Domain   string
	HTTPOnly bool
}

// NewTokenStore returns a TokenStore for the named cookie, defaulting to access_token.
func NewTokenStore(name, domain string, httpOnly bool) *TokenStore {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTokenCookieName
	}
	return &TokenStore{Name: name, Domain: domain, HTTPOnly: httpOnly}
}

// Get returns the token held by the request. It scans the raw Cookie headers
// rather than net/http's parser so values the API writes unquoted with a space
// ("Bearer eyJ...") are still found. ok is false when the cookie is absent or empty.
func (s *TokenStore) Get(r *http.Request) (string, bool) {
	for _, header := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(header, ";") {
			name, value, found := strings.Cut(strings.TrimSpace(part), "=")
			if !found || strings.TrimSpace(name) != s.Name {
				continue
			}
			tok := domainauth.NormalizeToken(value)
			if tok == "" {
				return "", false
			}
			return tok, true
		}
	}
	return "", false
}

// Set writes the token cookie. A zero expiresAt makes it a session cookie.
func (s *TokenStore) Set(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	c := s.cookie(r, token)
	if !expiresAt.IsZero() {
		c.Expires = expiresAt.UTC()
		if maxAge := int(time.Until(expiresAt).Seconds()); maxAge > 0 {
			c.MaxAge = maxAge
		}
	}
	http.SetCookie(w, c)
}

// Clear expires the token cookie immediately.
func (s *TokenStore) Clear(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, r, s.cookie(r, ""))
}

func (s *TokenStore) cookie(r *http.Request, value string) *http.Cookie {
	return &http.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     "/",
		Domain:   s.Domain,
		HttpOnly: s.HTTPOnly,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// clearCookie writes an epoch-expired copy of c, keeping its path and domain.
func clearCookie(w http.ResponseWriter, r *http.Request, c *http.Cookie) {
	expired := *c
	expired.Value = ""
	expired.MaxAge = -1
	expired.Expires = time.Unix(0, 0).UTC()
	if !expired.Secure {
		expired.Secure = isSecureRequest(r)
	}
	http.SetCookie(w, &expired)
}

// isSecureRequest reports whether the request arrived over HTTPS, directly or via a proxy.
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}
