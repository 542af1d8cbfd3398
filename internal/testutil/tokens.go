package testutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// testSigningKey signs fixture tokens. The UI never verifies signatures, so
// the key only has to produce a well-formed three-segment token.
var testSigningKey = []byte("sustainastock-test-key") //nolint:gochecknoglobals // test fixture

// TokenClaims describes the payload of a fixture token.
type TokenClaims struct {
	Username  string
	FirstName string
	LastName  string
	Role      string
	ExpiresAt time.Time
	// Extra claims are merged last and may override the fields above.
	Extra map[string]any
}

// MakeToken signs a HS256 token carrying the given claims.
func MakeToken(t TestingTB, c TokenClaims) string {
	t.Helper()

	claims := jwt.MapClaims{}
	if c.Username != "" {
		claims["username"] = c.Username
	}
	if c.FirstName != "" {
		claims["first_name"] = c.FirstName
	}
	if c.LastName != "" {
		claims["last_name"] = c.LastName
	}
	if c.Role != "" {
		claims["role"] = c.Role
	}
	if !c.ExpiresAt.IsZero() {
		claims["exp"] = jwt.NewNumericDate(c.ExpiresAt)
	}
	for k, v := range c.Extra {
		claims[k] = v
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

// AdminToken returns a token for an admin user named "a".
func AdminToken(t TestingTB) string {
	t.Helper()
	return MakeToken(t, TokenClaims{Username: "a", Role: "admin"})
}

// UserToken returns a token for a regular user named "u".
func UserToken(t TestingTB) string {
	t.Helper()
	return MakeToken(t, TokenClaims{Username: "u", Role: "user"})
}
