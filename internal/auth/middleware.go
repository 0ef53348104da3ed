package auth

import (
	"net/http"
	"strings"

	"github.com/sva-insights/founder-dashboard/internal/shared"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

var publicPrefixes = []string{"/api/", "/static/"}

var publicPaths = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// IsPublic reports whether path is reachable without signing in.
func IsPublic(path string) bool {
	if path == LoginPath {
		return true
	}
	if _, ok := publicPaths[path]; ok {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequireAuth redirects unauthenticated requests to the login page and
// signed-in visits of the login page to the dashboard.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed := shared.IsAuthenticated(r.Context())
		if r.URL.Path == LoginPath && authed && r.Method == http.MethodGet {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if !authed && !IsPublic(r.URL.Path) {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
