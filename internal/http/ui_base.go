package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/sustainastock/sustainastock-ui/internal/domain/auth"
	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	apperrors "github.com/sustainastock/sustainastock-ui/internal/errors"
	"github.com/sustainastock/sustainastock-ui/internal/http/ui/viewmodel"
	"github.com/sustainastock/sustainastock-ui/internal/service"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// AuthService is the credential exchange the login and register pages need.
type AuthService interface {
	Login(ctx context.Context, creds domainauth.Credentials) (*service.LoginResult, error)
	Register(ctx context.Context, reg domainauth.Registration) error
}

// InventoryService loads page data and forwards writes to the inventory API.
type InventoryService interface {
	Dashboard(ctx context.Context, token string) (*service.DashboardData, error)
	Inventory(ctx context.Context, token string, q service.InventoryQuery) (*service.InventoryData, error)
	Recommendations(ctx context.Context, token string) (*service.RecommendationsData, error)
	Alerts(ctx context.Context, token string) ([]model.Alert, error)
	Reports(ctx context.Context, token string) (*service.ReportsData, error)
	SaveSupply(
		ctx context.Context,
		sess domainauth.Session,
		token string,
		id int,
		req model.SupplyRequest,
	) (model.Supply, error)
	RecordUsage(ctx context.Context, token string, rec model.UsageRecord) error
	ResolveAlert(ctx context.Context, token, id string) error
	ExportReport(ctx context.Context, token string, format model.ReportFormat) (model.ReportFile, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthService      = (*service.AuthService)(nil)
	_ InventoryService = (*service.InventoryService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Auth      *AuthContext
	AuthSvc   AuthService
	Inventory InventoryService
	Flash     *Flasher
	IsDev     bool // Development mode flag for enhanced error reporting
	// PageSize is the supply table page size when the request does not choose one.
	PageSize int
	// Now returns the current time; tests pin it to check date validation.
	Now    func() time.Time
	Logger *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// popFlash returns the pending notification. Store errors are logged and dropped.
func (h *UIHandlers) popFlash(w http.ResponseWriter, r *http.Request) *viewmodel.Flash {
	f, err := h.Flash.Pop(w, r)
	if err != nil {
		h.logger().Warn("failed to read flash notification", "error", err, "path", r.URL.Path)
	}
	return f
}

// getPageParams parses pagination params from URL query with sane defaults.
func getPageParams(q url.Values, defaultSize int) (int, int) {
	page := 1
	pageSize := defaultSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if s := q.Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= maxPageSize {
			pageSize = n
		}
	}
	return page, pageSize
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// buildPageURL returns a URL with page and page_size set, preserving other query params.
// basePath should be the path without query string (e.g., "/inventory").
func buildPageURL(basePath string, q url.Values, p pageOpts) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		// drop transient/htmx params and empty keys
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(p.Page))
	qq.Set("page_size", strconv.Itoa(p.PageSize))
	return basePath + "?" + qq.Encode()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		CSRFToken:   GetCSRFToken(r),
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.User = &viewmodel.User{
			Username:    session.Username,
			DisplayName: session.DisplayName(),
			Role:        string(session.Role),
		}
		layout.IsAuthenticated = true
		layout.IsAdmin = session.IsAdmin()
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
		"CSRFToken":       layout.CSRFToken,
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta PageMeta
	// LoadFailed replaces the data widgets when Fetch fails.
	LoadFailed string
	// Fetch fills data. It must not write partial results on failure.
	Fetch func(ctx context.Context, data map[string]any) error
	// Decorate adds request-local UI state (sticky forms) after the fetch, success or not.
	Decorate func(data map[string]any)
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := NewTemplateData(r, spec.Meta).WithFlash(h.popFlash(w, r)).Build()
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if r.Context().Err() != nil {
				return
			}
			h.logger().WarnContext(r.Context(), "page data load failed",
				"page", spec.Meta.CurrentPage,
				"code", string(apperrors.GetCode(err)),
				"error", err,
				"request_id", GetRequestID(r.Context()),
			)
			markPageError(data, spec.LoadFailed)
		}
	}
	if spec.Decorate != nil {
		spec.Decorate(data)
	}
	h.renderPage(w, r, data)
}

func markPageError(data map[string]any, msg string) {
	if msg == "" {
		msg = "An unexpected error occurred. Please try again."
	}
	data["Error"] = true
	data["ErrorMessage"] = msg
}

// renderPage renders a page with htmx partial support. Re-rendered forms also
// use 200 so htmx swaps them in.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	// Client went away; nothing useful to render.
	if r.Context().Err() != nil {
		return
	}

	if !WantsPartial(r) {
		var buf strings.Builder
		if err := h.T.ExecuteTemplate(&buf, "layout", data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		h.write(w, buf.String())
		return
	}

	layout := extractLayoutInfo(data)
	var buf strings.Builder
	// Include a <title> element so htmx updates document.title on partial swaps
	buf.WriteString(`<title>` + html.EscapeString(layout.Title) + `</title>`)
	buf.WriteString(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` +
		html.EscapeString(layout.PageTitle) + `</h1>`)
	if err := h.T.ExecuteTemplate(&buf, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})
	h.write(w, buf.String())
}

func (h *UIHandlers) write(w http.ResponseWriter, body string) {
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger().Debug("failed to write response body", "error", err)
	}
}

func layoutFromProvider(data any) *viewmodel.Layout {
	provider, ok := data.(viewmodel.LayoutProvider)
	if !ok {
		return nil
	}
	return provider.LayoutData()
}

func layoutFromMap(data any) viewmodel.Layout {
	m, mapOK := data.(map[string]any)
	if !mapOK {
		return viewmodel.Layout{}
	}

	layout := viewmodel.Layout{}
	if v, titleOK := m["Title"].(string); titleOK {
		layout.Title = v
	}
	if v, pageTitleOK := m["PageTitle"].(string); pageTitleOK {
		layout.PageTitle = v
	}
	if v, currentPageOK := m["CurrentPage"].(string); currentPageOK {
		layout.CurrentPage = v
	}
	return layout
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if layout := layoutFromProvider(data); layout != nil {
		return *layout
	}
	if layout, ok := data.(viewmodel.Layout); ok {
		return layout
	}
	return layoutFromMap(data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
		"request_id", GetRequestID(r.Context()),
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		h.write(w, `<div class="template-error"><h2>Template Rendering Error</h2>`+
			`<p><strong>Context:</strong> `+html.EscapeString(context)+`</p>`+
			`<p><strong>Path:</strong> `+html.EscapeString(r.URL.Path)+`</p>`+
			`<pre>`+html.EscapeString(err.Error())+`</pre></div>`)
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
