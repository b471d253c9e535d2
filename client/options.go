package client

import "time"

// Options are per-call overrides for the request pipeline. The zero value
// of every field means "keep the pipeline default"; merging is per field.
type Options struct {
	// DisableRedirects stops the transport from following redirects for
	// this call. Redirects are followed by default.
	DisableRedirects bool
	// Auth overrides the default token resolution for this call.
	Auth AuthProvider
	// Data is the request body. It is JSON-encoded before dispatch unless
	// Files is set, in which case it must be a string map and is sent as
	// multipart form fields.
	Data any
	// Files switches the request to a multipart upload.
	Files []Upload
	// Headers override the standard header set key-by-key.
	Headers map[string]string
	// Params populate the URL query string.
	Params map[string]string
	// Timeout bounds this call. Defaults to the client timeout (80s).
	Timeout time.Duration
	// InsecureSkipTLS disables TLS certificate verification for this
	// call. Ignored when the client uses an injected transport.
	InsecureSkipTLS bool
	// Raw skips JSON decoding and returns the response untouched. Raw is
	// consumed by the pipeline and never forwarded to the transport.
	Raw bool
}

// merge overlays o onto base field-by-field. Zero-valued fields in o keep
// the base value. base.Headers is this call's private copy of the standard
// header set, so overlaying into it never leaks across calls.
func (o *Options) merge(base Options) Options {
	merged := base
	if o == nil {
		return merged
	}
	if o.DisableRedirects {
		merged.DisableRedirects = true
	}
	if o.Auth != nil {
		merged.Auth = o.Auth
	}
	if o.Data != nil {
		merged.Data = o.Data
	}
	if len(o.Files) > 0 {
		merged.Files = o.Files
	}
	for k, v := range o.Headers {
		merged.Headers[k] = v
	}
	if o.Params != nil {
		merged.Params = o.Params
	}
	if o.Timeout > 0 {
		merged.Timeout = o.Timeout
	}
	if o.InsecureSkipTLS {
		merged.InsecureSkipTLS = true
	}
	if o.Raw {
		merged.Raw = true
	}
	return merged
}

// cloneOptions copies opts so convenience methods can set fields without
// mutating the caller's value.
func cloneOptions(opts *Options) Options {
	if opts == nil {
		return Options{}
	}
	return *opts
}
