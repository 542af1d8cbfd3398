package service

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/testutil"
)

func newSessionService(t *testing.T, claims ClaimExpressions) *SessionService {
	t.Helper()
	svc, err := NewSessionService(SessionServiceOptions{Claims: claims})
	require.NoError(t, err)
	return svc
}

func rawToken(header, payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(header)) + "." + enc.EncodeToString([]byte(payload)) + ".sig"
}

func TestSessionService_Derive(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})
	exp := testutil.TestTime().Add(time.Hour)

	tok := testutil.MakeToken(t, testutil.TokenClaims{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "admin",
		ExpiresAt: exp,
		Extra:     map[string]any{"sub": "17"},
	})

	sess, err := svc.Derive(tok)
	require.NoError(t, err)
	assert.Equal(t, domainauth.Session{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      domainauth.RoleAdmin,
		Subject:   "17",
		ExpiresAt: exp,
	}, sess)
}

func TestSessionService_DeriveIsIdempotent(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})
	tok := testutil.UserToken(t)

	first, err := svc.Derive(tok)
	require.NoError(t, err)
	second, err := svc.Derive(tok)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSessionService_DeriveDefaults(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})

	tests := []struct {
		name     string
		payload  string
		wantUser string
		wantRole domainauth.Role
	}{
		{name: "missing role", payload: `{"username":"a"}`, wantUser: "a", wantRole: domainauth.RoleUser},
		{name: "unknown role", payload: `{"username":"a","role":"manager"}`, wantUser: "a", wantRole: domainauth.RoleUser},
		{name: "sub fallback", payload: `{"sub":"42","role":"ADMIN"}`, wantUser: "42", wantRole: domainauth.RoleAdmin},
		{name: "numeric sub", payload: `{"sub":7}`, wantUser: "7", wantRole: domainauth.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Derive(rawToken(`{"alg":"HS256","typ":"JWT"}`, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, sess.Username)
			assert.Equal(t, tt.wantRole, sess.Role)
			assert.Empty(t, sess.FirstName)
		})
	}
}

func TestSessionService_DeriveIgnoresHeaderAlgorithm(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})

	for _, header := range []string{`{"alg":"none"}`, `{"alg":"XYZ"}`, `{}`} {
		sess, err := svc.Derive(rawToken(header, `{"username":"a","role":"admin"}`))
		require.NoError(t, err, header)
		assert.True(t, sess.IsAdmin(), header)
	}
}

func TestSessionService_DeriveIgnoresHeaderSegment(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})

	for _, header := range []string{"not-json", "", "[1,2]"} {
		sess, err := svc.Derive(rawToken(header, `{"username":"a","role":"admin"}`))
		require.NoError(t, err, header)
		assert.Equal(t, "a", sess.Username, header)
		assert.True(t, sess.IsAdmin(), header)
	}

	sess, err := svc.Derive("%%%." + base64.RawURLEncoding.EncodeToString([]byte(`{"username":"b"}`)) + ".sig")
	require.NoError(t, err)
	assert.Equal(t, "b", sess.Username)
}

func TestSessionService_DeriveWithoutUsername(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})

	tests := []struct {
		name    string
		payload string
		want    domainauth.Session
	}{
		{
			name:    "role and first name only",
			payload: `{"role":"admin","first_name":"A"}`,
			want:    domainauth.Session{FirstName: "A", Role: domainauth.RoleAdmin},
		},
		{
			name:    "blank username",
			payload: `{"username":"  "}`,
			want:    domainauth.Session{Role: domainauth.RoleUser},
		},
		{
			name:    "empty object",
			payload: `{}`,
			want:    domainauth.Session{Role: domainauth.RoleUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Derive(rawToken(`{"alg":"HS256"}`, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sess)
		})
	}
}

func TestSessionService_DerivePaddedPayload(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})
	enc := base64.URLEncoding
	tok := enc.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." + enc.EncodeToString([]byte(`{"username":"ab"}`)) + ".sig"

	sess, err := svc.Derive(tok)
	require.NoError(t, err)
	assert.Equal(t, "ab", sess.Username)
}

func TestSessionService_DeriveMalformed(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{})

	tests := map[string]string{
		"empty":          "",
		"one segment":    "abc",
		"two segments":   "abc.def",
		"bad base64":     "eyJhbGciOiJIUzI1NiJ9.!!!.sig",
		"not json":       rawToken(`{"alg":"HS256"}`, `not-json`),
		"json array":     rawToken(`{"alg":"HS256"}`, `[1,2]`),
		"four segments":  "a.b.c.d",
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Derive(tok)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestSessionService_CustomClaims(t *testing.T) {
	svc := newSessionService(t, ClaimExpressions{
		Username: "preferred_username",
		Role:     "roles[0]",
	})

	sess, err := svc.Derive(rawToken(`{"alg":"RS256"}`, `{"preferred_username":"pu","roles":["admin","user"]}`))
	require.NoError(t, err)
	assert.Equal(t, "pu", sess.Username)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
}

func TestNewSessionService_InvalidExpression(t *testing.T) {
	_, err := NewSessionService(SessionServiceOptions{Claims: ClaimExpressions{Role: "roles[["}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}
