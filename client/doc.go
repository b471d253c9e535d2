// Package client implements the Genora request pipeline: it resolves
// authentication tokens, merges per-call options over defaults, resolves
// request paths against the configured API host, dispatches a single HTTP
// attempt, and classifies the outcome.
//
// # Basic Usage
//
//	c, err := client.New(client.Config{
//	    APIHost: "https://api.genora.io",
//	    APIKey:  "tok-abc123",
//	})
//
//	resp, err := c.Get(ctx, "/v2/datasets", map[string]string{"limit": "10"}, nil)
//
// Every failure is a *client.Error with exactly one Kind:
//
//   - KindConfiguration: no API host was resolvable; no network attempt made.
//   - KindTransport: the network call itself failed (connect, timeout, TLS).
//   - KindAPI: the server answered with a non-success status; the full
//     response rides along for inspection.
//
// The pipeline performs exactly one attempt per call. Retry and backoff
// policy belongs to the caller.
package client
