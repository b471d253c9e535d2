// Package credentials provides read-only access to persisted Genora
// credentials. It is the lowest-precedence token source consulted by the
// client: explicit tokens and configured API keys always win over stored
// credentials.
package credentials

import "errors"

// ErrNotFound reports that no stored credentials are available. Stores
// return it (or wrap it) for every benign miss: missing file, missing
// entry, unparseable contents. Failures that may indicate a real problem
// (e.g. permission errors) are returned as-is so callers can log them
// before falling through to unauthenticated requests.
var ErrNotFound = errors.New("credentials: not found")

// Credentials is a stored identifier/token pair.
type Credentials struct {
	// Identifier names the account the token belongs to.
	Identifier string
	// Token is the API token.
	Token string
}

// Store looks up persisted credentials.
type Store interface {
	Lookup() (Credentials, error)
}
