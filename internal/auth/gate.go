package auth

import (
	"net/http"
	"net/url"
	"strings"
)

// publicRoutes are reachable without a session token. Any other path is
// protected. A prefix matches itself and everything under it, so
// "/login/x" is public while "/loginx" is not.
var publicRoutes = []string{"/", "/login", "/register"}

// landingPath is where authenticated users are sent away from the
// public-only pages.
const landingPath = "/dashboard"

// Gate is the access gate: it classifies every incoming path as public or
// protected and emits redirects before any other handling. It checks only
// token presence; validity is the handlers' concern.
func (m *SessionManager) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		token := m.Token(r)

		if token == "" && !isPublic(path) {
			http.Redirect(w, r, "/login?redirect="+url.QueryEscape(path), http.StatusSeeOther)
			return
		}

		if token != "" && (path == "/login" || path == "/register" || path == "/") {
			http.Redirect(w, r, landingPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isPublic(path string) bool {
	for _, route := range publicRoutes {
		if path == route || strings.HasPrefix(path, route+"/") {
			return true
		}
	}
	return false
}
