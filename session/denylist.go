package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "cb:revoked"

// Denylist records tokens that must no longer authenticate even though
// their signature and expiry are still good.
type Denylist interface {
	// Revoke marks tok revoked until its expiry; entries may be dropped
	// once until has passed.
	Revoke(ctx context.Context, tok string, until time.Time) error
	// Revoked reports whether tok has been revoked.
	Revoked(ctx context.Context, tok string) (bool, error)
}

// RedisDenylist keys revoked tokens by digest so the raw bearer token never
// lands in Redis. Entries expire with the token's own lifetime, so the set
// stays bounded by the number of logouts within one session TTL.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist returns a denylist over client.
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func denylistKey(tok string) string {
	sum := sha256.Sum256([]byte(tok))
	return denylistPrefix + ":" + hex.EncodeToString(sum[:])
}

// Revoke stores the token digest with a TTL matching the token's remaining
// lifetime. Already-expired tokens are not stored; nothing accepts them
// anyway.
func (d *RedisDenylist) Revoke(ctx context.Context, tok string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, denylistKey(tok), 1, ttl).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

// Revoked reports whether tok's digest is present.
func (d *RedisDenylist) Revoked(ctx context.Context, tok string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKey(tok)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist lookup: %w", err)
	}
	return n > 0, nil
}
