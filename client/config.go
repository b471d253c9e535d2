package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/genora/genora-go/config"
	"github.com/genora/genora-go/credentials"
	"github.com/genora/genora-go/logger"
)

// Doer executes a prepared HTTP request. *http.Client satisfies it; tests
// inject recording doubles.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	// APIHost is the base URL request paths are resolved against. Empty
	// falls back to the process default (config.APIHost()).
	APIHost string
	// APIKey authenticates requests from this client. Empty falls back
	// to the process default key, then to stored credentials.
	APIKey string
	// Timeout is the default per-call timeout. Defaults to 80s.
	Timeout time.Duration
	// Headers are merged over the standard header set for every call.
	Headers map[string]string
	// InsecureSkipTLS disables TLS certificate verification.
	InsecureSkipTLS bool
	// Transport overrides the HTTP transport. When set, per-call TLS and
	// redirect options are the transport's responsibility.
	Transport Doer
	// Credentials is the lowest-precedence token source. Defaults to the
	// standard credentials file.
	Credentials credentials.Store
	// Logger receives the pipeline's debug and diagnostic lines.
	Logger *logger.Logger
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = config.DefaultTimeout
	}
	if c.Credentials == nil {
		c.Credentials = &credentials.FileStore{}
	}
	if c.Logger == nil {
		c.Logger = logger.GetGlobalLogger().WithComponent("client")
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("genora: timeout must be positive")
	}
	return nil
}
