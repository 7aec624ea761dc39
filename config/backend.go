package config

import (
	"strings"
	"time"
)

const defaultBackendTimeout = 10 * time.Second

// BackendConfig contains configuration for the activities API backend.
type BackendConfig struct {
	// BaseURL is the root URL of the activities API.
	BaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each request to the backend.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = defaultBackendTimeout
	}
}
