package client

import (
	"errors"
	"net/http"

	"github.com/genora/genora-go/config"
	"github.com/genora/genora-go/credentials"
	"github.com/genora/genora-go/logger"
)

// AuthProvider attaches authentication to an outgoing request.
type AuthProvider interface {
	Authenticate(req *http.Request)
}

// TokenAuth authenticates requests with a Genora API token.
type TokenAuth struct {
	Token string
}

// Authenticate sets the Authorization header when a token is present. With
// no token the request goes out unauthenticated and the server decides.
func (a TokenAuth) Authenticate(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", "Token "+a.Token)
	}
}

// NoAuth sends requests unauthenticated.
type NoAuth struct{}

// Authenticate is a no-op.
func (NoAuth) Authenticate(*http.Request) {}

// resolveToken picks the effective API token, highest precedence first:
// explicit value, client key, process default key, stored credentials. It
// never fails; any store miss resolves to "no token". A store failure that
// is not a plain not-found is logged so genuine defects (e.g. permission
// errors) stay visible.
func resolveToken(explicit, clientKey string, store credentials.Store, log *logger.Logger) string {
	if explicit != "" {
		return explicit
	}
	if clientKey != "" {
		return clientKey
	}
	if key := config.APIKey(); key != "" {
		return key
	}
	if store == nil {
		return ""
	}
	creds, err := store.Lookup()
	if err != nil {
		if !errors.Is(err, credentials.ErrNotFound) && log != nil {
			log.Warn("credential store lookup failed", map[string]any{"error": err.Error()})
		}
		return ""
	}
	return creds.Token
}
