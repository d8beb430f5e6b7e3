package crickboost

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/crickboost/crickboost/password"
)

// EnvProduction is the Server.Env value that turns on production-only
// behavior (currently: the Secure attribute on the session cookie).
const EnvProduction = "production"

const minSessionSecretBytes = 32

// Config is the full runtime configuration. Zero values are not usable;
// start from [DefaultConfig] or [ConfigFromEnv] and check [Config.Validate]
// before wiring anything.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Password PasswordConfig
	Redis    RedisConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string
	Env  string
}

// SessionConfig holds the token signing secret and session lifetime.
type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
}

// PasswordConfig mirrors password.Params so the whole deployment is
// configured in one place.
type PasswordConfig struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Params converts to the password package's parameter type.
func (c PasswordConfig) Params() password.Params {
	return password.Params{
		Memory:      c.Memory,
		Time:        c.Time,
		Parallelism: c.Parallelism,
		SaltLength:  c.SaltLength,
		KeyLength:   c.KeyLength,
	}
}

// RedisConfig points at the optional Redis backend. An empty Addr selects
// the in-memory credential store and disables session revocation.
type RedisConfig struct {
	Addr     string
	Password string
}

// DefaultConfig returns development settings: local listener, 7-day
// sessions, default argon2id costs, no Redis, and no signing secret (which
// Validate rejects — the secret always comes from the environment).
func DefaultConfig() Config {
	p := password.DefaultParams()

	return Config{
		Server: ServerConfig{
			Addr: ":8080",
			Env:  "development",
		},
		Session: SessionConfig{
			TTL: 7 * 24 * time.Hour,
		},
		Password: PasswordConfig{
			Memory:      p.Memory,
			Time:        p.Time,
			Parallelism: p.Parallelism,
			SaltLength:  p.SaltLength,
			KeyLength:   p.KeyLength,
		},
	}
}

// ConfigFromEnv layers CRICKBOOST_* environment variables over DefaultConfig.
//
//	CRICKBOOST_ADDR            listener address
//	CRICKBOOST_ENV             "production" enables the Secure cookie attribute
//	CRICKBOOST_SESSION_SECRET  HS256 signing key, at least 32 bytes
//	CRICKBOOST_SESSION_TTL     session lifetime in seconds
//	CRICKBOOST_REDIS_ADDR      Redis address; empty keeps the in-memory store
//	CRICKBOOST_REDIS_PASSWORD  Redis auth
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CRICKBOOST_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CRICKBOOST_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("CRICKBOOST_SESSION_SECRET"); v != "" {
		cfg.Session.Secret = []byte(v)
	}
	if v := os.Getenv("CRICKBOOST_SESSION_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Session.TTL = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("CRICKBOOST_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("CRICKBOOST_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	return cfg
}

// Validate rejects configurations that cannot run safely.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server address is required")
	}
	if len(c.Session.Secret) < minSessionSecretBytes {
		return fmt.Errorf("config: session secret must be at least %d bytes", minSessionSecretBytes)
	}
	if c.Session.TTL <= 0 {
		return errors.New("config: session TTL must be positive")
	}
	if err := validatePasswordConfig(c.Password); err != nil {
		return err
	}
	return nil
}

func validatePasswordConfig(c PasswordConfig) error {
	// password.New runs the authoritative floor checks; surface them here
	// so misconfiguration fails at startup, not at the first signup.
	_, err := password.New(c.Params())
	return err
}

// Production reports whether the deployment is production-like.
func (c Config) Production() bool {
	return c.Server.Env == EnvProduction
}
