package middleware

import (
	"net/http"

	"github.com/crickboost/crickboost/session"
)

// Guard returns the edge middleware for routes. The check is cookie
// presence only — never signature or expiry — so the gate costs nothing per
// request and full validation stays with the pages that need identity.
func Guard(routes RouteSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if routes.ExcludedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(session.CookieName)
			present := err == nil && cookie.Value != ""

			switch routes.Classify(r.URL.Path) {
			case RouteProtected:
				if !present {
					http.Redirect(w, r, routes.LoginPath, http.StatusSeeOther)
					return
				}
			case RouteAuthOnly:
				if present {
					http.Redirect(w, r, routes.DashboardPath, http.StatusSeeOther)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
