package crickboost

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/crickboost/crickboost/password"
)

// CredentialStore owns user records and their password digests. All methods
// return the digest-free [User] view; the digest never leaves the store.
//
// Lookup misses are not errors: GetUserByEmail and VerifyCredentials return
// (nil, nil) for an unknown email, and VerifyCredentials also returns
// (nil, nil) for a wrong password. A non-nil error means the backend itself
// failed.
//
// CreateUser must treat its duplicate check and insert as one atomic step
// per store instance: two concurrent signups racing on the same email must
// not both succeed.
type CredentialStore interface {
	CreateUser(ctx context.Context, email, plaintext, name string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	VerifyCredentials(ctx context.Context, email, plaintext string) (*User, error)
}

// newDecoyDigest hashes a random value the store can verify candidate
// passwords against when the email is unknown, so lookup misses cost the
// same as digest mismatches and response timing does not reveal whether an
// account exists.
func newDecoyDigest(hasher *password.Hasher) (string, error) {
	raw := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("decoy digest: %w", err)
	}
	return hasher.Hash(base64.RawStdEncoding.EncodeToString(raw))
}
