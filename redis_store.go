package crickboost

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/crickboost/crickboost/password"
)

const redisUserPrefix = "cb:user"

// RedisStore is the Redis-backed CredentialStore. Email uniqueness rides on
// SETNX: the email key is claimed atomically before the record is written,
// so concurrent signups on one email resolve to a single winner without any
// application-side locking.
//
// Key layout:
//
//	cb:user:email:<email> -> user id (uniqueness claim)
//	cb:user:id:<id>       -> hash {id, email, name, digest}
type RedisStore struct {
	client *redis.Client
	hasher *password.Hasher
	decoy  string
}

// NewRedisStore returns a store over client hashing with hasher.
func NewRedisStore(client *redis.Client, hasher *password.Hasher) (*RedisStore, error) {
	decoy, err := newDecoyDigest(hasher)
	if err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		hasher: hasher,
		decoy:  decoy,
	}, nil
}

func (s *RedisStore) emailKey(email string) string {
	return redisUserPrefix + ":email:" + email
}

func (s *RedisStore) idKey(id string) string {
	return redisUserPrefix + ":id:" + id
}

// CreateUser claims the email via SETNX, then writes the record. Losing the
// claim yields [ErrDuplicateUser].
func (s *RedisStore) CreateUser(ctx context.Context, email, plaintext, name string) (*User, error) {
	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()

	claimed, err := s.client.SetNX(ctx, s.emailKey(email), id, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !claimed {
		return nil, ErrDuplicateUser
	}

	err = s.client.HSet(ctx, s.idKey(id),
		"id", id,
		"email", email,
		"name", name,
		"digest", digest,
	).Err()
	if err != nil {
		// Release the claim so a retried signup is not locked out forever.
		_ = s.client.Del(ctx, s.emailKey(email)).Err()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &User{ID: id, Email: email, Name: name}, nil
}

// GetUserByEmail returns the user with exactly this email, or (nil, nil).
func (s *RedisStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, _, err := s.lookup(ctx, email)
	return user, err
}

// VerifyCredentials checks email/plaintext and returns the user on a match,
// (nil, nil) otherwise. An unknown email still pays for one digest
// verification; records under weaker hash settings are re-hashed after a
// successful match.
func (s *RedisStore) VerifyCredentials(ctx context.Context, email, plaintext string) (*User, error) {
	user, digest, err := s.lookup(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_, _ = s.hasher.Verify(plaintext, s.decoy)
		return nil, nil
	}

	ok, err := s.hasher.Verify(plaintext, digest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if upgrade, err := s.hasher.NeedsUpgrade(digest); err == nil && upgrade {
		if fresh, err := s.hasher.Hash(plaintext); err == nil {
			_ = s.client.HSet(ctx, s.idKey(user.ID), "digest", fresh).Err()
		}
	}

	return user, nil
}

func (s *RedisStore) lookup(ctx context.Context, email string) (*User, string, error) {
	id, err := s.client.Get(ctx, s.emailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	fields, err := s.client.HGetAll(ctx, s.idKey(id)).Result()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(fields) == 0 {
		// Claim exists but the record write never landed; treat as absent.
		return nil, "", nil
	}

	user := &User{
		ID:    fields["id"],
		Email: fields["email"],
		Name:  fields["name"],
	}
	return user, fields["digest"], nil
}
