package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	sustainastock "github.com/sustainastock/sustainastock-ui"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// StaticPathFromRoot is the on-disk static directory used in dev mode.
const StaticPathFromRoot = "frontend/static"

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth      *AuthContext
	AuthSvc   AuthService
	Inventory InventoryService
	// Flash backs Post/Redirect/Get notifications. Nil disables them.
	Flash ports.FlashStore
	// Templates overrides the renderer built from the template filesystem.
	Templates    *TemplateRenderer
	HealthChecks []HealthCheck
	CSRF         CSRFConfig
	Compression  CompressionConfig
	// PageSize is the default supply table page size.
	PageSize int
	// Now overrides the clock used for form date checks.
	Now    func() time.Time
	IsDev  bool         // Development mode flag for hot reloading, etc.
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter builds the mux and wraps it in the middleware chain:
// Recover, RequestID, Logging, Compression, CSRF, RouteGuard, 404 handling.
func NewRouter(services RouterServices) http.Handler {
	if services.Auth == nil {
		panic("httpx: AuthContext is required")
	}
	logger := services.logger()
	mux := http.NewServeMux()

	health := healthHandler(services.HealthChecks...)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	// Dev mode serves from disk for hot reloading; prod serves the embedded FS.
	mux.Handle("GET /static/", staticWithFallback(services.IsDev, logger))

	authHandlers := &AuthHandlers{Auth: services.Auth, Logger: logger}
	mux.HandleFunc("POST /logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)

	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		registerUIRoutes(mux, uiHandlers)
	}

	var handler http.Handler = &notFoundHandler{mux: mux, uiHandlers: uiHandlers}
	handler = RouteGuard(services.Auth)(handler)
	handler = CSRFProtection(services.CSRF)(handler)
	compression := services.Compression
	if compression.Logger == nil {
		compression.Logger = logger
	}
	handler = Compression(compression)(handler)
	handler = Logging(logger)(handler)
	handler = RequestID()(handler)
	return Recover(logger)(handler)
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /{$}", h.Landing)
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("GET /register", h.RegisterPage)
	mux.HandleFunc("POST /register", h.RegisterSubmit)

	mux.HandleFunc("GET /dashboard", h.Dashboard)

	mux.HandleFunc("GET /inventory", h.InventoryPage)
	mux.HandleFunc("POST /inventory/supplies", h.SaveSupply)
	mux.HandleFunc("POST /inventory/supplies/{id}", h.SaveSupply)
	mux.HandleFunc("POST /inventory/usage", h.RecordUsage)

	mux.HandleFunc("GET /recommendations", h.Recommendations)

	mux.HandleFunc("GET /alerts", h.Alerts)
	mux.HandleFunc("POST /alerts/{id}/resolve", h.ResolveAlert)

	mux.HandleFunc("GET /reports", h.Reports)
	mux.HandleFunc("GET /reports/export", h.ExportReport)
}

// templateSource picks the template and static filesystems.
// In dev mode both come from disk; in production from the embedded FS.
func templateSource(isDev bool, logger *slog.Logger) (fs.FS, fs.FS) {
	if isDev {
		return os.DirFS(TemplatePathFromRoot), os.DirFS(StaticPathFromRoot)
	}
	templateFS, err := fs.Sub(sustainastock.TemplateFS, "frontend/templates")
	if err != nil {
		logger.Warn("failed to open embedded templates; falling back to disk", "error", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}
	staticFS, err := fs.Sub(sustainastock.StaticFS, StaticPathFromRoot)
	if err != nil {
		logger.Warn("failed to open embedded static assets; falling back to disk", "error", err)
		staticFS = os.DirFS(StaticPathFromRoot)
	}
	return templateFS, staticFS
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// It returns nil when templates cannot be parsed; the router then serves only
// the JSON and static routes.
func setupUIHandlers(services RouterServices) *UIHandlers {
	logger := services.logger()

	tr := services.Templates
	if tr == nil {
		templateFS, staticFS := templateSource(services.IsDev, logger)

		resolver, err := NewAssetResolver(staticFS, services.IsDev)
		if err != nil {
			logger.Warn("asset fingerprinting disabled", "error", err)
			resolver = nil
		} else {
			resolver.SetLogger(logger)
		}

		tr, err = NewTemplateRenderer(TemplateRendererConfig{
			TemplateFS: templateFS,
			Resolver:   resolver,
			Logger:     logger,
		})
		if err != nil {
			logger.Error("failed to create template renderer", slog.Any("error", err))
			return nil
		}
	}

	return &UIHandlers{
		T:         tr,
		Auth:      services.Auth,
		AuthSvc:   services.AuthSvc,
		Inventory: services.Inventory,
		Flash:     &Flasher{Store: services.Flash},
		IsDev:     services.IsDev,
		PageSize:  services.PageSize,
		Now:       services.Now,
		Logger:    logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot))))
	}

	staticSub, err := fs.Sub(sustainastock.StaticFS, StaticPathFromRoot)
	if err != nil {
		logger.Warn("failed to create sub-filesystem for static assets", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders adds cache headers. Fingerprinted URLs (?v=<hash>)
// change whenever the file does, so they can be cached for a year.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "" {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and renders the 404 page for unmatched GETs.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Other methods keep the mux answer (405 with Allow, or 404).
	if h.uiHandlers == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		h.mux.ServeHTTP(w, r)
		return
	}
	if _, pattern := h.mux.Handler(r); pattern == "" {
		h.uiHandlers.NotFound(w, r)
		return
	}
	h.mux.ServeHTTP(w, r)
}
