// Package web serves the site's pages: the public landing page, the login
// and signup forms, and the protected dashboard hosting the shot classifier
// widget.
//
// Handlers stay thin. Credential work goes through the engine, session
// lifetime through the session manager; templates only ever see the public
// User view and per-field error messages. The classifier itself is an
// external collaborator loaded in the browser — the dashboard page carries
// its mount point and nothing else.
package web
