package client

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Response is the terminal result of a pipeline call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
	// Raw reports that the pipeline skipped JSON decoding, either because
	// Options.Raw was set or because the status code carries no
	// meaningful JSON body (204, 301, 302).
	Raw bool

	decodeOnce sync.Once
	document   any
	decodeErr  error
}

// JSON returns the body decoded as generic JSON. The decode runs once; the
// result and any error are cached.
func (r *Response) JSON() (any, error) {
	r.decodeOnce.Do(func() {
		r.decodeErr = json.Unmarshal(r.Body, &r.document)
	})
	return r.document, r.decodeErr
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// IsSuccess reports a status code in [200, 400).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
