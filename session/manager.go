package session

import (
	"context"
	"net/http"
	"time"

	"github.com/crickboost/crickboost"
	"github.com/crickboost/crickboost/token"
)

// CookieName is the one cookie this site sets.
const CookieName = "session"

// DefaultTTL is the fixed session lifetime: one week.
const DefaultTTL = 7 * 24 * time.Hour

// Options tunes a Manager. The zero value is usable outside production.
type Options struct {
	// TTL overrides DefaultTTL when positive.
	TTL time.Duration
	// Secure sets the cookie's Secure attribute; enable in production-like
	// deployments only, so local plain-HTTP development keeps working.
	Secure bool
	// Denylist turns on server-side revocation when non-nil.
	Denylist Denylist
}

// Manager is the session lifecycle front: create on login/signup, read on
// page loads, delete on logout. Safe for concurrent use.
type Manager struct {
	codec    *token.Codec
	ttl      time.Duration
	secure   bool
	denylist Denylist
}

// NewManager returns a Manager minting tokens with codec.
func NewManager(codec *token.Codec, opts Options) *Manager {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		codec:    codec,
		ttl:      ttl,
		secure:   opts.Secure,
		denylist: opts.Denylist,
	}
}

// Create mints a token for user and writes the session cookie. The returned
// SessionData is the plaintext the caller can use immediately, without a
// round-trip through Get.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, user crickboost.User) (*crickboost.SessionData, error) {
	signed, expires, err := m.codec.Encode(user, m.ttl)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.UnixMilli(expires),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return &crickboost.SessionData{User: user, Expires: expires}, nil
}

// Get returns the verified session on r, or nil. Decode failures, stale
// tokens, and revoked tokens are silently treated as "no session"; nothing
// here is an error the caller could act on.
func (m *Manager) Get(ctx context.Context, r *http.Request) *crickboost.SessionData {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	data, err := m.codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}
	if token.Expired(data, time.Now()) {
		return nil
	}

	if m.denylist != nil {
		revoked, err := m.denylist.Revoked(ctx, cookie.Value)
		if err != nil {
			// Denylist outage: prefer availability. The token still carries
			// a valid signature and unexpired embedded expiry.
			return data
		}
		if revoked {
			return nil
		}
	}

	return data
}

// Delete clears the session cookie by overwriting it with an empty value
// that expired at the epoch. With a denylist attached, the token on r is
// also revoked until its embedded expiry, killing copies the client kept.
func (m *Manager) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if m.denylist != nil {
		if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
			if data, err := m.codec.Decode(cookie.Value); err == nil {
				_ = m.denylist.Revoke(ctx, cookie.Value, time.UnixMilli(data.Expires))
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
