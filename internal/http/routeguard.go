package httpx

import (
	"net/http"
	"strings"
)

// PageClass groups paths by how the guard treats them.
type PageClass int

const (
	// PageClassOther is always allowed (static assets, health, logout, status).
	PageClassOther PageClass = iota
	// PageClassPublic is for signed-out visitors; signed-in users are sent to the dashboard.
	PageClassPublic
	// PageClassProtected requires a session.
	PageClassProtected
)

// Guard redirect targets.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

//nolint:gochecknoglobals // static route table
var (
	publicPaths    = []string{"/", "/login", "/register"}
	protectedRoots = []string{"/dashboard", "/inventory", "/recommendations", "/alerts", "/reports"}
)

// ClassifyPath maps a request path to its PageClass. Protected roots cover their sub-paths.
func ClassifyPath(path string) PageClass {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	for _, p := range publicPaths {
		if path == p {
			return PageClassPublic
		}
	}
	for _, root := range protectedRoots {
		if path == root || strings.HasPrefix(path, root+"/") {
			return PageClassProtected
		}
	}
	return PageClassOther
}

// Decision is the guard's verdict for one request.
type Decision struct {
	Allow    bool
	Redirect string
}

// Guard decides whether a request for path may proceed.
func Guard(path string, authenticated bool) Decision {
	switch ClassifyPath(path) {
	case PageClassPublic:
		if authenticated {
			return Decision{Redirect: DashboardPath}
		}
	case PageClassProtected:
		if !authenticated {
			return Decision{Redirect: LoginPath}
		}
	case PageClassOther:
	}
	return Decision{Allow: true}
}

// RouteGuard derives the session once, stores it on the request context and
// applies Guard. Denied requests get a 303, or HX-Redirect for htmx requests.
func RouteGuard(auth *AuthContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := auth.derive(r)
			r = r.WithContext(withAuthState(r.Context(), st))

			d := Guard(r.URL.Path, st.Session != nil)
			if !d.Allow {
				redirect(w, r, d.Redirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirect sends the browser to target, using HX-Redirect for htmx requests.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
