package crickboost

import "errors"

// Builder assembles an [Engine]. Construction is allocation-only; nothing
// touches a backend until the engine's methods run.
type Builder struct {
	store CredentialStore
	built bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// WithStore sets the credential store backing the engine.
func (b *Builder) WithStore(store CredentialStore) *Builder {
	b.store = store
	return b
}

// Build returns the engine. A Builder is single-use.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if b.store == nil {
		return nil, ErrEngineNotReady
	}
	b.built = true

	return &Engine{store: b.store}, nil
}
