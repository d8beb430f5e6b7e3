// Package session manages the lifetime of the browser session: minting the
// signed token, persisting it as the "session" cookie, reading it back, and
// clearing it.
//
// Get never returns an error. An absent cookie, a tampered token, and a
// stale-but-authentic token are all the same observable state — no session.
// Full verification lives here, not in the route guard; the guard only
// checks that the cookie exists.
//
// Deletion overwrites the cookie and is client-cooperative: a copy of a
// still-unexpired token kept elsewhere remains verifiable. Deployments that
// need real revocation attach a [Denylist]; Delete then records the token
// until its embedded expiry and Get refuses denylisted tokens.
package session
