package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crickboost/crickboost"
)

const minSecretLen = 32

type sessionClaims struct {
	User    crickboost.User `json:"user"`
	Expires int64           `json:"expires"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a single symmetric key.
// Safe for concurrent use.
type Codec struct {
	secret []byte
	parser *jwt.Parser
}

// NewCodec returns a Codec signing with secret. The secret must be at least
// 32 bytes for HS256.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("token: secret must be at least %d bytes", minSecretLen)
	}

	// The registered claims are informational; expiry enforcement belongs
	// to the caller, against the in-payload field. Signature verification
	// is unaffected by skipping claims validation.
	// Strict base64 keeps the tamper property exact: a flipped padding bit
	// in the signature segment must not decode to the same bytes.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
		jwt.WithStrictDecoding(),
	)

	return &Codec{secret: secret, parser: parser}, nil
}

// Encode signs a token for user expiring ttl from now. It returns the
// compact token and the expiry it embedded, in unix millis.
func (c *Codec) Encode(user crickboost.User, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	expires := now.Add(ttl).UnixMilli()

	claims := sessionClaims{
		User:    user,
		Expires: expires,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(time.UnixMilli(expires)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", 0, fmt.Errorf("token: sign: %w", err)
	}
	return signed, expires, nil
}

// Decode verifies the signature and returns the embedded session data.
// Any verification or schema failure comes back as [crickboost.ErrTokenInvalid];
// the decoded fields are never touched before the signature checks out.
//
// Decode does not compare the expiry against the clock — an expired but
// authentic token decodes successfully.
func (c *Codec) Decode(tokenStr string) (*crickboost.SessionData, error) {
	parsed, err := c.parser.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crickboost.ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, crickboost.ErrTokenInvalid
	}
	if claims.User.ID == "" || claims.Expires == 0 {
		return nil, fmt.Errorf("%w: missing session fields", crickboost.ErrTokenInvalid)
	}

	return &crickboost.SessionData{User: claims.User, Expires: claims.Expires}, nil
}

// Expired reports whether data's embedded expiry has passed.
func Expired(data *crickboost.SessionData, now time.Time) bool {
	if data == nil {
		return true
	}
	return data.Expires < now.UnixMilli()
}
