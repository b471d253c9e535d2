package client

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/genora/genora-go/config"
	"github.com/genora/genora-go/credentials"
	"github.com/genora/genora-go/logger"
)

type staticStore struct {
	creds credentials.Credentials
	err   error
}

func (s staticStore) Lookup() (credentials.Credentials, error) {
	return s.creds, s.err
}

func TestResolveTokenPrecedence(t *testing.T) {
	resetProcessDefaults(t)

	store := staticStore{creds: credentials.Credentials{Identifier: "u", Token: "tok-store"}}

	tests := []struct {
		name       string
		explicit   string
		clientKey  string
		processKey string
		store      credentials.Store
		want       string
	}{
		{"explicit wins over everything", "tok-explicit", "tok-client", "tok-process", store, "tok-explicit"},
		{"client key wins over process key", "", "tok-client", "tok-process", store, "tok-client"},
		{"process key wins over store", "", "", "tok-process", store, "tok-process"},
		{"store is the last resort", "", "", "", store, "tok-store"},
		{"nothing anywhere", "", "", "", emptyStore{}, ""},
		{"store lookup failure resolves to none", "", "", "", staticStore{err: errors.New("corrupt file")}, ""},
		{"nil store resolves to none", "", "", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.SetAPIKey(tt.processKey)
			defer config.SetAPIKey("")

			got := resolveToken(tt.explicit, tt.clientKey, tt.store, nil)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveTokenLogsUnexpectedStoreFailure(t *testing.T) {
	resetProcessDefaults(t)

	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "warn"}, &buf)

	got := resolveToken("", "", staticStore{err: errors.New("permission denied")}, log)
	if got != "" {
		t.Errorf("expected no token, got %q", got)
	}
	if !strings.Contains(buf.String(), "permission denied") {
		t.Errorf("expected warn log for unexpected store failure, got %q", buf.String())
	}
}

func TestResolveTokenStaysQuietOnNotFound(t *testing.T) {
	resetProcessDefaults(t)

	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "warn"}, &buf)

	_ = resolveToken("", "", emptyStore{}, log)
	if buf.Len() != 0 {
		t.Errorf("expected no log for plain not-found, got %q", buf.String())
	}
}

func TestTokenAuthSetsHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://api.genora.io/v2/user", nil)
	TokenAuth{Token: "tok-abc"}.Authenticate(req)
	if got := req.Header.Get("Authorization"); got != "Token tok-abc" {
		t.Errorf("expected Token tok-abc, got %q", got)
	}
}

func TestTokenAuthEmptyTokenSetsNothing(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://api.genora.io/v2/user", nil)
	TokenAuth{}.Authenticate(req)
	if got := req.Header.Get("Authorization"); got != "" {
		t.Errorf("expected no header, got %q", got)
	}
}

func TestNoAuthSetsNothing(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://api.genora.io/v2/user", nil)
	NoAuth{}.Authenticate(req)
	if got := req.Header.Get("Authorization"); got != "" {
		t.Errorf("expected no header, got %q", got)
	}
}
