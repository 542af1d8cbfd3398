package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
)

// AuthAPI exchanges credentials with the external API. The API issues the token;
// nothing in this process signs or verifies one.
type AuthAPI interface {
	// Login returns the raw bearer token issued for the credentials.
	Login(ctx context.Context, creds domainauth.Credentials) (string, error)
	Register(ctx context.Context, reg domainauth.Registration) error
}

// SessionDeriver projects a bearer token onto a Session without verifying it.
type SessionDeriver interface {
	Derive(token string) (domainauth.Session, error)
}
