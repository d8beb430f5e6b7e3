package crickboost

// User is the public identity record. It is what stores hand back to
// callers and what session tokens embed; it never carries the password
// digest.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionData is the decoded content of a session token.
//
// Expires is unix milliseconds and is the authoritative application-level
// expiry. The token's registered exp claim mirrors it but is informational
// only; callers that need liveness must compare Expires against the clock.
type SessionData struct {
	User    User  `json:"user"`
	Expires int64 `json:"expires"`
}

// SignupInput is the raw form input for account creation. Validation
// happens in [Engine.Signup], not at construction.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is the raw form input for login.
type LoginInput struct {
	Email    string
	Password string
}
