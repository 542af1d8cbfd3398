package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Only admin and user are recognized; anything else maps to user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a raw claim value into a Role, defaulting to RoleUser.
func ParseRole(raw string) Role {
	if strings.EqualFold(strings.TrimSpace(raw), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Session is the request-scoped view of the signed-in user.
// It is a pure projection of the bearer token payload and is never persisted.
type Session struct {
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Role      Role      `json:"role"`
	Subject   string    `json:"sub,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// DisplayName prefers the full name and falls back to the username.
func (s Session) DisplayName() string {
	full := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if full != "" {
		return full
	}
	return s.Username
}

// Credentials is the login form payload forwarded to the auth API.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the sign-up payload forwarded to the auth API.
type Registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NormalizeToken strips surrounding double quotes and a case-insensitive
// "Bearer " prefix from a raw cookie or body value.
func NormalizeToken(raw string) string {
	tok := strings.TrimSpace(raw)
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		tok = strings.TrimSpace(tok[1 : len(tok)-1])
	}
	const bearer = "bearer "
	if len(tok) >= len(bearer) && strings.EqualFold(tok[:len(bearer)], bearer) {
		tok = strings.TrimSpace(tok[len(bearer):])
	}
	return tok
}
