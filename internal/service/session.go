package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// ErrMalformedToken is returned for tokens whose payload segment cannot be
// decoded into a JSON object.
var ErrMalformedToken = errors.New("malformed token")

// ClaimExpressions are JMESPath expressions evaluated against the token payload.
type ClaimExpressions struct {
	Username  string
	FirstName string
	LastName  string
	Role      string
}

// DefaultClaimExpressions matches the payload issued by the inventory API.
func DefaultClaimExpressions() ClaimExpressions {
	return ClaimExpressions{
		Username:  "username || sub",
		FirstName: "first_name",
		LastName:  "last_name",
		Role:      "role",
	}
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Claims ClaimExpressions
	Logger *slog.Logger
}

// SessionService derives a Session from a bearer token. Signatures are never
// checked here; the API authorizes every call it receives.
type SessionService struct {
	claims ClaimExpressions
	parser *jwt.Parser
	logger *slog.Logger
}

var _ ports.SessionDeriver = (*SessionService)(nil)

// NewSessionService validates the claim expressions and builds the service.
// Empty expressions fall back to the defaults.
func NewSessionService(opts SessionServiceOptions) (*SessionService, error) {
	claims := opts.Claims
	def := DefaultClaimExpressions()
	claims.Username = fallback(claims.Username, def.Username)
	claims.FirstName = fallback(claims.FirstName, def.FirstName)
	claims.LastName = fallback(claims.LastName, def.LastName)
	claims.Role = fallback(claims.Role, def.Role)

	for name, expr := range map[string]string{
		"username":   claims.Username,
		"first_name": claims.FirstName,
		"last_name":  claims.LastName,
		"role":       claims.Role,
	} {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("invalid %s claim expression %q: %w", name, expr, err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		claims: claims,
		parser: jwt.NewParser(jwt.WithPaddingAllowed()),
		logger: logger,
	}, nil
}

// Derive decodes the payload segment and maps it onto a Session. The header
// and signature segments are never inspected. The same token always yields
// the same Session.
func (s *SessionService) Derive(token string) (domainauth.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainauth.Session{}, fmt.Errorf("%w: empty", ErrMalformedToken)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return domainauth.Session{}, fmt.Errorf("%w: want 3 segments, got %d", ErrMalformedToken, len(parts))
	}
	raw, err := s.parser.DecodeSegment(parts[1])
	if err != nil {
		s.logger.Debug("token payload could not be decoded", "error", err)
		return domainauth.Session{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		s.logger.Debug("token payload is not a JSON object", "error", err)
		return domainauth.Session{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	payload := map[string]any(claims)
	sess := domainauth.Session{
		Username:  s.lookup(s.claims.Username, payload),
		FirstName: s.lookup(s.claims.FirstName, payload),
		LastName:  s.lookup(s.claims.LastName, payload),
		Role:      domainauth.ParseRole(s.lookup(s.claims.Role, payload)),
		Subject:   stringify(payload["sub"]),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.UTC()
	}
	return sess, nil
}

func (s *SessionService) lookup(expr string, payload map[string]any) string {
	v, err := jmespath.Search(expr, payload)
	if err != nil {
		s.logger.Debug("claim expression failed", "expr", expr, "error", err)
		return ""
	}
	return stringify(v)
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
