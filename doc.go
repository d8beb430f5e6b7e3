// Package crickboost is the server for the CrickBoost cricket-coaching site: a
// public marketing page plus an authenticated dashboard hosting the shot
// classifier widget.
//
// The root package owns the authentication core — credential stores, input
// validation, and the [Engine] that front-ends signup and login. Session
// token signing lives in token/, cookie lifecycle in session/, the
// presence-only route guard in middleware/, and the HTTP page surface in
// web/.
//
// # Architecture boundaries
//
// Stores return the password-free [User] view only; digests never cross a
// store boundary. The route guard checks cookie presence and nothing else —
// signature and expiry verification happens when a page asks the session
// manager for the full identity. Pose classification is an external
// collaborator reached from the browser; nothing in this module calls it.
package crickboost
