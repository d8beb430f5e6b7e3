// Package middleware carries the edge route guard: a presence-only gate
// that redirects by route class before any page logic runs.
//
// The guard checks that the session cookie exists and nothing more. A
// tampered or expired cookie passes the gate and is caught downstream when
// the page calls the session manager. That split is deliberate: guard
// failures surface as cheap edge redirects, verify failures silently
// downgrade to "logged out". Do not fold verification into the guard — it
// changes the failure-mode contract.
package middleware
