package httpx

import (
	"bytes"
	"net/http"
	"strings"
)

const msgPageNotFound = "The page you're looking for doesn't exist."

// IsBrowserRequest reports whether the client should get HTML rather than JSON.
// htmx requests and clients that accept text/html or send no Accept header are browsers.
func IsBrowserRequest(r *http.Request) bool {
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	if strings.Contains(accept, "text/html") {
		return true
	}
	return !strings.Contains(accept, "application/json")
}

// NotFound handles 404 errors with auth-aware behavior.
// For browser requests, it renders an HTML error page.
// For API requests, it returns a JSON error response.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		h.renderBrowserNotFound(w, r)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Message: "not found",
	})
}

// renderBrowserNotFound renders the HTML 404 page. Signed-out visitors get a
// sign-in link; signed-in users get a link back to the dashboard.
func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	layout := buildLayout(r, PageMeta{Title: "Page Not Found - SustainaStock", PageTitle: "Page Not Found"})
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"Code":            "404",
		"Message":         msgPageNotFound,
		"IsAuthenticated": layout.IsAuthenticated,
		"ShowLogin":       !layout.IsAuthenticated,
		"LoginPath":       LoginPath,
		"HomePath":        DashboardPath,
	}

	if h == nil || h.T == nil {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}

	// Buffer so a template failure can still fall back to plain text.
	var buf bytes.Buffer
	if err := h.T.ExecuteTemplate(&buf, "error-layout", data); err != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.write(w, buf.String())
}
