// Package config loads Genora client settings and owns the process-wide
// defaults (API key and API host) consulted by the request pipeline when a
// client was not given explicit values.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/genora/genora-go/logger"
)

// DefaultTimeout is the default per-call request timeout.
const DefaultTimeout = 80 * time.Second

var validate = validator.New()

// Settings is the full client configuration surface.
type Settings struct {
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	APIHost string        `yaml:"api_host" mapstructure:"api_host" validate:"omitempty,url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	if s.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive")
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Apply publishes the settings into the process-wide default cell.
func (s *Settings) Apply() {
	SetAPIKey(s.APIKey)
	SetAPIHost(s.APIHost)
}

// --- process-wide defaults ---

// The default cell backs zero-config usage: surrounding configuration or
// CLI code writes it once at startup; the pipeline only reads it. Callers
// that want full isolation pass APIKey/APIHost on the client config and
// never touch the cell.

var (
	mu      sync.RWMutex
	apiKey  string
	apiHost string
)

// SetAPIKey sets the process-wide default API key.
func SetAPIKey(key string) {
	mu.Lock()
	apiKey = key
	mu.Unlock()
}

// APIKey returns the process-wide default API key.
func APIKey() string {
	mu.RLock()
	defer mu.RUnlock()
	return apiKey
}

// SetAPIHost sets the process-wide default API host.
func SetAPIHost(host string) {
	mu.Lock()
	apiHost = host
	mu.Unlock()
}

// APIHost returns the process-wide default API host.
func APIHost() string {
	mu.RLock()
	defer mu.RUnlock()
	return apiHost
}
