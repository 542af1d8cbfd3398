package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// User-facing auth messages.
const (
	MsgLoginFailed        = "Invalid username or password. Please try again."
	MsgCredentialsMissing = "Please enter your username and password."
	MsgRegisterMissing    = "Username and password are required."
	MsgPasswordTooShort   = "Password must be at least 8 characters."
	MsgRegisterFailed     = "Registration failed"
	MsgRegisterSucceeded  = "Registration successful!"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.AuthAPI
	Sessions ports.SessionDeriver
	Logger   *slog.Logger
}

// AuthService forwards credentials to the API and checks that the returned
// token yields a session.
type AuthService struct {
	api      ports.AuthAPI
	sessions ports.SessionDeriver
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.API == nil {
		panic("service: AuthAPI is required")
	}
	if opts.Sessions == nil {
		panic("service: SessionDeriver is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{api: opts.API, sessions: opts.Sessions, logger: logger}
}

// LoginResult is a successful login.
type LoginResult struct {
	Token   string
	Session domainauth.Session
}

// Login validates the credentials locally, then exchanges them for a token.
// Every API failure, including an unusable token, maps to MsgLoginFailed.
func (s *AuthService) Login(ctx context.Context, creds domainauth.Credentials) (*LoginResult, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, apperrors.Validation(MsgCredentialsMissing)
	}

	token, err := s.api.Login(ctx, creds)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, apperrors.MapUpstreamError(ctxErr)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, MsgLoginFailed)
	}

	sess, err := s.sessions.Derive(token)
	if err != nil {
		s.logger.WarnContext(ctx, "login returned an undecodable token", "error", err)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, MsgLoginFailed)
	}

	return &LoginResult{Token: token, Session: sess}, nil
}

// detailer is implemented by API errors that carry a server-provided reason.
type detailer interface {
	ErrorDetail() string
}

// Register validates the form and creates the account. On API failure the
// returned AppError message is the server's detail text, or MsgRegisterFailed.
func (s *AuthService) Register(ctx context.Context, reg domainauth.Registration) error {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)

	if reg.Username == "" || reg.Password == "" {
		return apperrors.Validation(MsgRegisterMissing)
	}
	if len(reg.Password) < MinPasswordLength {
		return apperrors.ValidationField("password", MsgPasswordTooShort)
	}

	if err := s.api.Register(ctx, reg); err != nil {
		msg := MsgRegisterFailed
		var d detailer
		if errors.As(err, &d) && strings.TrimSpace(d.ErrorDetail()) != "" {
			msg = strings.TrimSpace(d.ErrorDetail())
		}
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, msg)
	}
	return nil
}

// DecodeToken derives a session for operator tooling.
func (s *AuthService) DecodeToken(token string) (domainauth.Session, error) {
	sess, err := s.sessions.Derive(domainauth.NormalizeToken(token))
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("decode token: %w", err)
	}
	return sess, nil
}
