package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	"github.com/sustainastock/sustainastock-ui/internal/service"
	"github.com/sustainastock/sustainastock-ui/internal/testutil"
)

func TestLoginPage_RendersForm(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}

	rec := app.get("/login", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/login"`)
	assert.Contains(t, body, `name="username"`)
	assert.Contains(t, body, `name="password"`)
	assert.Contains(t, body, `name="csrf_token"`)
}

func TestLoginPage_SignedInUserGoesToDashboard(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}

	rec := app.get("/login", testutil.UserToken(t))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DashboardPath, rec.Header().Get("Location"))
}

func TestLoginSubmit_Success(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}
	token := testutil.AdminToken(t)
	app.auth.token = token

	rec := app.post("/login", "", url.Values{"username": {" a "}, "password": {"secret-pass"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DashboardPath, rec.Header().Get("Location"))
	assert.Equal(t, "a", app.auth.lastCreds.Username)

	c := cookieNamed(rec, DefaultTokenCookieName)
	require.NotNil(t, c, "expected the token cookie to be set")
	assert.Equal(t, token, c.Value)

	// The new cookie signs the browser in.
	next := app.get(DashboardPath, c.Value)
	assert.Equal(t, http.StatusOK, next.Code)
}

func TestLoginSubmit_HTMXUsesHXRedirect(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}
	app.auth.token = testutil.UserToken(t)

	form := url.Values{"username": {"u"}, "password": {"pw"}, DefaultCSRFFieldName: {testCSRFToken}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Hx-Request", "true")
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, DashboardPath, rec.Header().Get("Hx-Redirect"))
}

func TestLoginSubmit_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "rejected credentials",
			err:     apperrors.Unauthorized(service.MsgLoginFailed),
			wantMsg: service.MsgLoginFailed,
		},
		{
			name:    "api unreachable",
			err:     apperrors.Unavailable("The inventory service is unavailable."),
			wantMsg: service.MsgLoginFailed,
		},
		{
			name:    "missing fields",
			err:     apperrors.Validation(service.MsgCredentialsMissing),
			wantMsg: service.MsgCredentialsMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			if app == nil {
				return
			}
			app.auth.loginErr = tt.err

			rec := app.post("/login", "", url.Values{"username": {"sam"}, "password": {"nope"}})

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.wantMsg)
			assert.Contains(t, body, `value="sam"`, "username should be sticky")
			assert.Nil(t, cookieNamed(rec, DefaultTokenCookieName))
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("page renders", func(t *testing.T) {
		app := newTestApp(t)
		if app == nil {
			return
		}
		rec := app.get("/register", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/register"`)
		assert.Contains(t, rec.Body.String(), `minlength="8"`)
	})

	t.Run("success redirects to login with a notification", func(t *testing.T) {
		app := newTestApp(t)
		if app == nil {
			return
		}
		rec := app.post("/register", "", url.Values{
			"username":   {"newbie"},
			"password":   {"long-enough"},
			"first_name": {"New"},
			"last_name":  {"Bie"},
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, LoginPath, rec.Header().Get("Location"))
		assert.Equal(t, "newbie", app.auth.lastReg.Username)
		assert.Equal(t, "New", app.auth.lastReg.FirstName)

		next := app.follow(t, rec, "")
		assert.Equal(t, http.StatusOK, next.Code)
		assert.Contains(t, next.Body.String(), service.MsgRegisterSucceeded)
	})

	t.Run("api detail is surfaced", func(t *testing.T) {
		app := newTestApp(t)
		if app == nil {
			return
		}
		app.auth.registerErr = apperrors.Validation("Username already registered")

		rec := app.post("/register", "", url.Values{"username": {"taken"}, "password": {"long-enough"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Username already registered")
		assert.Contains(t, rec.Body.String(), `value="taken"`)
		assert.NotContains(t, rec.Body.String(), "long-enough", "password must never be echoed")
	})

	t.Run("unexpected failure falls back to generic text", func(t *testing.T) {
		app := newTestApp(t)
		if app == nil {
			return
		}
		app.auth.registerErr = assert.AnError

		rec := app.post("/register", "", url.Values{"username": {"x"}, "password": {"long-enough"}})

		assert.Contains(t, rec.Body.String(), service.MsgRegisterFailed)
	})
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}

	rec := app.post("/logout", testutil.UserToken(t), nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	c := cookieNamed(rec, DefaultTokenCookieName)
	require.NotNil(t, c, "expected the token cookie to be cleared")
	assert.Empty(t, c.Value)
	assert.True(t, c.Expires.Before(time.Now()))
}

func TestLogout_RequiresCSRF(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: DefaultTokenCookieName, Value: testutil.UserToken(t)})
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthStatus(t *testing.T) {
	app := newTestApp(t)
	if app == nil {
		return
	}

	t.Run("signed out", func(t *testing.T) {
		rec := app.get("/auth/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
	})

	t.Run("admin", func(t *testing.T) {
		token := testutil.MakeToken(t, testutil.TokenClaims{
			Username:  "a",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Role:      "admin",
		})
		rec := app.get("/auth/status", token)
		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Authenticated bool `json:"authenticated"`
			User          struct {
				Username    string `json:"username"`
				DisplayName string `json:"display_name"`
				Role        string `json:"role"`
				IsAdmin     bool   `json:"is_admin"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Authenticated)
		assert.Equal(t, "a", got.User.Username)
		assert.Equal(t, "Ada Lovelace", got.User.DisplayName)
		assert.Equal(t, "admin", got.User.Role)
		assert.True(t, got.User.IsAdmin)
	})
}
