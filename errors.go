package crickboost

import "errors"

var (
	// ErrDuplicateUser is returned by CredentialStore.CreateUser when the
	// email is already registered (case-sensitive exact match).
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Engine.Login for both an unknown
	// email and a wrong password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenInvalid is returned by the token codec when a session token
	// fails signature verification or does not match the expected schema.
	ErrTokenInvalid = errors.New("invalid session token")
	// ErrStoreUnavailable wraps backend failures of the Redis-backed
	// credential store.
	ErrStoreUnavailable = errors.New("credential store unavailable")
	// ErrEngineNotReady is returned by Builder.Build when a required
	// dependency is missing.
	ErrEngineNotReady = errors.New("engine not initialized")
)
