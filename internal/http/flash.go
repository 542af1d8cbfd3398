package httpx

import (
	"net/http"
	"time"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	"github.com/sustainastock/sustainastock-ui/internal/http/ui/viewmodel"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// FlashCookieName carries the id of the pending notification between a POST and the redirected GET.
const FlashCookieName = "flash_id"

// Flasher stores one-shot notifications in a FlashStore keyed by a short-lived cookie.
type Flasher struct {
	Store ports.FlashStore
	Now   func() time.Time
}

// Set stores the notification and points the browser at it. A nil Flasher drops the message.
func (f *Flasher) Set(w http.ResponseWriter, r *http.Request, kind model.NotificationKind, message string) error {
	if f == nil || f.Store == nil || message == "" {
		return nil
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	id, err := f.Store.Put(r.Context(), model.Notification{Kind: kind, Message: message, CreatedAt: now()})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending notification, if any, and clears the cookie.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) (*viewmodel.Flash, error) {
	if f == nil || f.Store == nil {
		return nil, nil
	}
	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	clearCookie(w, r, &http.Cookie{Name: FlashCookieName, Path: "/", HttpOnly: true})

	n, ok, err := f.Store.Take(r.Context(), c.Value)
	if err != nil || !ok {
		return nil, err
	}
	return &viewmodel.Flash{Kind: string(n.Kind), Message: n.Message}, nil
}

// redirectWithFlash completes a Post/Redirect/Get with a notification for the next page.
func (h *UIHandlers) redirectWithFlash(
	w http.ResponseWriter,
	r *http.Request,
	target string,
	kind model.NotificationKind,
	message string,
) {
	if err := h.Flash.Set(w, r, kind, message); err != nil {
		h.logger().Warn("failed to store flash notification",
			"error", err,
			"path", r.URL.Path,
			"request_id", GetRequestID(r.Context()),
		)
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
