package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

// LoginPage renders the sign-in form.
// GET /login.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.loginData(w, r, "", ""))
}

// LoginSubmit exchanges credentials for a token and signs the browser in.
// POST /login.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, h.loginData(w, r, "", service.MsgLoginFailed))
		return
	}
	creds := domainauth.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	res, err := h.AuthSvc.Login(r.Context(), creds)
	if err != nil {
		if apperrors.IsCanceled(err) {
			return
		}
		msg := service.MsgLoginFailed
		if apperrors.IsValidation(err) {
			msg = apperrors.GetMessage(err, msg)
		}
		h.logger().InfoContext(r.Context(), "login rejected",
			"username", creds.Username,
			"code", apperrors.GetCode(err),
			"request_id", GetRequestID(r.Context()),
		)
		h.renderPage(w, r, h.loginData(w, r, creds.Username, msg))
		return
	}

	if _, err := h.Auth.Login(w, r, res.Token); err != nil {
		h.logger().WarnContext(r.Context(), "could not store login token", "error", err)
		h.renderPage(w, r, h.loginData(w, r, creds.Username, service.MsgLoginFailed))
		return
	}

	h.logger().InfoContext(r.Context(), "user signed in",
		"username", res.Session.Username,
		"role", string(res.Session.Role),
	)
	redirect(w, r, DashboardPath)
}

func (h *UIHandlers) loginData(w http.ResponseWriter, r *http.Request, username, errMsg string) map[string]any {
	b := NewTemplateData(r, PageMeta{Title: "SustainaStock - Sign in", PageTitle: "Sign in", CurrentPage: PageLogin}).
		WithFlash(h.popFlash(w, r)).
		With("Username", username)
	if errMsg != "" {
		b.WithError(errMsg)
	}
	return b.Build()
}

// registerForm is the sticky state of the registration form. The password is never echoed.
type registerForm struct {
	Username  string
	FirstName string
	LastName  string
}

// RegisterPage renders the sign-up form.
// GET /register.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.registerData(r, registerForm{}, ""))
}

// RegisterSubmit creates an account and sends the user to sign in.
// POST /register.
func (h *UIHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, h.registerData(r, registerForm{}, service.MsgRegisterFailed))
		return
	}
	reg := domainauth.Registration{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		Password:  r.PostFormValue("password"),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
	}
	form := registerForm{Username: reg.Username, FirstName: reg.FirstName, LastName: reg.LastName}

	if err := h.AuthSvc.Register(r.Context(), reg); err != nil {
		if apperrors.IsCanceled(err) {
			return
		}
		h.renderPage(w, r, h.registerData(r, form, apperrors.GetMessage(err, service.MsgRegisterFailed)))
		return
	}

	h.logger().InfoContext(r.Context(), "user registered", "username", reg.Username)
	h.redirectWithFlash(w, r, LoginPath, model.NotificationSuccess, service.MsgRegisterSucceeded)
}

func (h *UIHandlers) registerData(r *http.Request, form registerForm, errMsg string) map[string]any {
	b := NewTemplateData(r, PageMeta{Title: "SustainaStock - Register", PageTitle: "Create an account", CurrentPage: PageRegister}).
		With("Form", form).
		With("MinPasswordLength", service.MinPasswordLength)
	if errMsg != "" {
		b.WithError(errMsg)
	}
	return b.Build()
}

// AuthHandlers serves the session endpoints that do not render pages.
type AuthHandlers struct {
	Auth   *AuthContext
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Logout clears the token cookie and returns to the sign-in page.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.Auth.Session(r); ok {
		h.logger().InfoContext(r.Context(), "user signed out", "username", sess.Username)
	}
	h.Auth.Logout(w, r)
	redirect(w, r, LoginPath)
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Auth.Session(r)
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	user := map[string]any{
		"username":     sess.Username,
		"first_name":   sess.FirstName,
		"last_name":    sess.LastName,
		"display_name": sess.DisplayName(),
		"role":         string(sess.Role),
		"is_admin":     sess.IsAdmin(),
	}
	if !sess.ExpiresAt.IsZero() {
		user["expires_at"] = sess.ExpiresAt.UTC()
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          user,
	})
}
