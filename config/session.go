package config

import "time"

// RedisConfig contains Redis connection configuration for the token store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

const defaultTokenTTL = 8 * time.Hour

// SessionConfig contains browser session configuration.
type SessionConfig struct {
	// CookieName is the name of the browser session cookie. The cookie
	// carries only an opaque session ID; the auth token lives server-side.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TokenTTL is how long a persisted auth token survives without use.
	TokenTTL time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"8h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.CookieName == "" {
		s.CookieName = "sid"
	}
	if s.TokenTTL <= 0 {
		s.TokenTTL = defaultTokenTTL
	}
}
