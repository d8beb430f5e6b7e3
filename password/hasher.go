package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const phcID = "argon2id"

// Parameter floors. Anything below these is misconfiguration, not a
// tuning choice.
const (
	minMemoryKiB    uint32 = 8 * 1024
	minTime         uint32 = 1
	minParallelism  uint8  = 1
	minSaltLength   uint32 = 16
	minDigestLength uint32 = 16
)

// ErrMalformedDigest is returned when a stored digest is not a PHC argon2id
// string this package can parse.
var ErrMalformedDigest = errors.New("malformed password digest")

// Params are the argon2id cost settings. Memory is in KiB.
type Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns interactive-login settings: 64 MiB, 3 passes,
// 2 lanes.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func (p Params) validate() error {
	switch {
	case p.Memory < minMemoryKiB:
		return fmt.Errorf("password: memory must be >= %d KiB", minMemoryKiB)
	case p.Time < minTime:
		return errors.New("password: time cost must be >= 1")
	case p.Parallelism < minParallelism:
		return errors.New("password: parallelism must be >= 1")
	case p.SaltLength < minSaltLength:
		return fmt.Errorf("password: salt length must be >= %d", minSaltLength)
	case p.KeyLength < minDigestLength:
		return fmt.Errorf("password: key length must be >= %d", minDigestLength)
	}
	return nil
}

// Hasher produces and checks argon2id digests. Safe for concurrent use.
type Hasher struct {
	params Params
}

// New validates p and returns a Hasher. Length or policy rules for the
// plaintext itself belong to input validation, not here.
func New(p Params) (*Hasher, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Hasher{params: p}, nil
}

// Hash derives a fresh digest for plaintext under a random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("password: salt generation: %w", err)
	}

	key := argon2.IDKey(
		[]byte(plaintext),
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		phcID,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plaintext matches the stored digest. The digest's
// own embedded parameters drive the comparison, so records hashed under
// older settings still verify.
func (h *Hasher) Verify(plaintext, digest string) (bool, error) {
	d, err := parseDigest(digest)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(plaintext),
		d.salt,
		d.time,
		d.memory,
		d.parallelism,
		uint32(len(d.key)),
	)

	return subtle.ConstantTimeCompare(computed, d.key) == 1, nil
}

// NeedsUpgrade reports whether digest was produced under weaker settings
// than the hasher's current params, so callers can re-hash on the next
// successful login.
func (h *Hasher) NeedsUpgrade(digest string) (bool, error) {
	d, err := parseDigest(digest)
	if err != nil {
		return false, err
	}

	weaker := d.memory < h.params.Memory ||
		d.time < h.params.Time ||
		d.parallelism < h.params.Parallelism ||
		uint32(len(d.key)) != h.params.KeyLength
	return weaker, nil
}

type digest struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parseDigest(s string) (*digest, error) {
	parts := strings.Split(s, "$")
	// Leading '$' yields an empty first element.
	if len(parts) != 6 || parts[0] != "" || parts[1] != phcID {
		return nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrMalformedDigest
	}

	var d digest
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &d.memory, &d.time, &d.parallelism); err != nil {
		return nil, ErrMalformedDigest
	}
	if d.memory < minMemoryKiB || d.time < minTime || d.parallelism < minParallelism {
		return nil, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || uint32(len(salt)) < minSaltLength {
		return nil, ErrMalformedDigest
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || uint32(len(key)) < minDigestLength {
		return nil, ErrMalformedDigest
	}

	d.salt = salt
	d.key = key
	return &d, nil
}
