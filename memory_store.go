package crickboost

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/crickboost/crickboost/password"
)

type credentialRecord struct {
	user   User
	digest string
}

// MemoryStore is the process-local CredentialStore. It backs development
// and tests; records vanish with the process.
type MemoryStore struct {
	hasher *password.Hasher
	decoy  string

	mu      sync.Mutex
	byID    map[string]credentialRecord
	byEmail map[string]string
}

// NewMemoryStore returns an empty in-memory store hashing with hasher.
func NewMemoryStore(hasher *password.Hasher) (*MemoryStore, error) {
	decoy, err := newDecoyDigest(hasher)
	if err != nil {
		return nil, err
	}

	return &MemoryStore{
		hasher:  hasher,
		decoy:   decoy,
		byID:    make(map[string]credentialRecord),
		byEmail: make(map[string]string),
	}, nil
}

// CreateUser registers a new user and returns its public view, or
// [ErrDuplicateUser] when the email is already taken. The duplicate check
// and the insert share one critical section.
func (s *MemoryStore) CreateUser(ctx context.Context, email, plaintext, name string) (*User, error) {
	// Hashing is slow on purpose; keep it outside the lock. The race two
	// concurrent signups create is settled by the locked re-check below.
	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return nil, ErrDuplicateUser
	}

	user := User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	s.byID[user.ID] = credentialRecord{user: user, digest: digest}
	s.byEmail[email] = user.ID

	return &user, nil
}

// GetUserByEmail returns the user with exactly this email, or (nil, nil).
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	user := s.byID[id].user
	return &user, nil
}

// VerifyCredentials checks email/plaintext and returns the user on a match,
// (nil, nil) otherwise. An unknown email still pays for one digest
// verification. Records hashed under weaker settings are transparently
// re-hashed after a successful match.
func (s *MemoryStore) VerifyCredentials(ctx context.Context, email, plaintext string) (*User, error) {
	s.mu.Lock()
	id, known := s.byEmail[email]
	record := s.byID[id]
	s.mu.Unlock()

	if !known {
		_, _ = s.hasher.Verify(plaintext, s.decoy)
		return nil, nil
	}

	ok, err := s.hasher.Verify(plaintext, record.digest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if upgrade, err := s.hasher.NeedsUpgrade(record.digest); err == nil && upgrade {
		if digest, err := s.hasher.Hash(plaintext); err == nil {
			s.mu.Lock()
			if rec, present := s.byID[id]; present {
				rec.digest = digest
				s.byID[id] = rec
			}
			s.mu.Unlock()
		}
	}

	user := record.user
	return &user, nil
}
