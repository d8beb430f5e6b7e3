package crickboost

import "context"

// Engine front-ends the credential store with input validation. It is safe
// for concurrent use once constructed through [Builder.Build].
type Engine struct {
	store CredentialStore
}

// Signup validates in, then creates the account.
//
// Malformed input returns a [*ValidationError] with per-field messages; an
// already-registered email returns [ErrDuplicateUser]. On success the new
// user's public view is returned, ready for session creation.
func (e *Engine) Signup(ctx context.Context, in SignupInput) (*User, error) {
	if verr := validateSignup(in); verr != nil {
		return nil, verr
	}
	return e.store.CreateUser(ctx, in.Email, in.Password, in.Name)
}

// Login validates in, then checks the credentials.
//
// Unknown email and wrong password both come back as
// [ErrInvalidCredentials]; nothing in the engine's behavior distinguishes
// them.
func (e *Engine) Login(ctx context.Context, in LoginInput) (*User, error) {
	if verr := validateLogin(in); verr != nil {
		return nil, verr
	}

	user, err := e.store.VerifyCredentials(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UserByEmail exposes the store's exact-match lookup.
func (e *Engine) UserByEmail(ctx context.Context, email string) (*User, error) {
	return e.store.GetUserByEmail(ctx, email)
}
