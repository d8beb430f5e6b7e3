package middleware

import "strings"

// RouteClass buckets a request path. Every path falls into exactly one
// class; public is the residual.
type RouteClass int

const (
	// RoutePublic paths carry no session constraint.
	RoutePublic RouteClass = iota
	// RouteProtected paths require a session cookie.
	RouteProtected
	// RouteAuthOnly paths must be visited without a session cookie.
	RouteAuthOnly
)

// RouteSet is the static route partition the guard runs on. Protected
// entries match by prefix, AuthOnly entries by exact path, Excluded
// entries by prefix before anything else.
type RouteSet struct {
	Protected []string
	AuthOnly  []string
	Excluded  []string

	// LoginPath is where unauthenticated protected-route requests go.
	LoginPath string
	// DashboardPath is where authenticated auth-only requests go.
	DashboardPath string
}

// DefaultRouteSet mirrors the site's route surface: /dashboard and
// sub-paths protected, the login and signup forms auth-only, static assets
// and API paths outside the guard entirely.
func DefaultRouteSet() RouteSet {
	return RouteSet{
		Protected:     []string{"/dashboard"},
		AuthOnly:      []string{"/login", "/signup"},
		Excluded:      []string{"/static/", "/favicon.ico", "/api/"},
		LoginPath:     "/login",
		DashboardPath: "/dashboard",
	}
}

// Classify returns path's bucket.
func (rs RouteSet) Classify(path string) RouteClass {
	for _, prefix := range rs.Protected {
		if strings.HasPrefix(path, prefix) {
			return RouteProtected
		}
	}
	for _, exact := range rs.AuthOnly {
		if path == exact {
			return RouteAuthOnly
		}
	}
	return RoutePublic
}

// ExcludedPath reports whether the guard should skip path altogether.
func (rs RouteSet) ExcludedPath(path string) bool {
	for _, prefix := range rs.Excluded {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
