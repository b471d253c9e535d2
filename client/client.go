package client

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/genora/genora-go/config"
	"github.com/genora/genora-go/version"
)

const tracerName = "github.com/genora/genora-go/client"

// Client is the Genora request pipeline. It owns the standard header set,
// merges per-call options over defaults, resolves request paths against
// the API host, dispatches a single attempt, and classifies the outcome.
//
// A Client is safe for concurrent use: every call works on its own copies
// of headers and options, and the only shared reads are the process-wide
// defaults.
type Client struct {
	config  Config
	headers map[string]string

	secure       Doer
	insecureOnce sync.Once
	insecure     Doer
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:  cfg,
		headers: standardHeaders(cfg.Headers),
	}
	if cfg.Transport != nil {
		c.secure = cfg.Transport
	} else {
		c.secure = newHTTPClient(cfg.InsecureSkipTLS)
	}
	return c, nil
}

// standardHeaders builds the default outgoing header set.
func standardHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{
		"Content-Type":    "application/json",
		"Accept":          "application/json",
		"Accept-Encoding": "gzip,deflate",
		"User-Agent":      version.UserAgent(),
	}
	for k, v := range extra {
		headers[k] = v
	}
	return headers
}

// redirectsDisabledKey marks a request context whose redirects must not be
// followed.
type redirectsDisabledKey struct{}

// newHTTPClient builds the underlying transport. Redirect following is
// decided per call through the request context, so one client serves both
// policies.
func newHTTPClient(insecureTLS bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.InsecureSkipVerify = true
	}
	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if req.Context().Value(redirectsDisabledKey{}) != nil {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// defaultOptions builds this call's option record, seeded with a private
// copy of the standard headers.
func (c *Client) defaultOptions() Options {
	headers := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	return Options{
		Headers:         headers,
		Timeout:         c.config.Timeout,
		InsecureSkipTLS: c.config.InsecureSkipTLS,
	}
}

// Get issues a GET request. params populate the query string.
func (c *Client) Get(ctx context.Context, url string, params map[string]string, opts *Options) (*Response, error) {
	o := cloneOptions(opts)
	o.Params = params
	return c.Request(ctx, http.MethodGet, url, &o)
}

// Post issues a POST request with data as the body.
func (c *Client) Post(ctx context.Context, url string, data any, opts *Options) (*Response, error) {
	o := cloneOptions(opts)
	o.Data = data
	return c.Request(ctx, http.MethodPost, url, &o)
}

// Put issues a PUT request with data as the body.
func (c *Client) Put(ctx context.Context, url string, data any, opts *Options) (*Response, error) {
	o := cloneOptions(opts)
	o.Data = data
	return c.Request(ctx, http.MethodPut, url, &o)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, opts *Options) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, url, opts)
}

// Request issues a single HTTP request and classifies the outcome.
//
// The returned Response carries a lazily decoded JSON view. When opts.Raw
// is set, or the status code has no meaningful JSON body (204, 301, 302),
// the response is marked Raw and left untouched. Non-success status codes
// (outside [200, 400)) surface as a KindAPI error carrying the full
// response; failures of the network call itself surface as KindTransport.
func (c *Client) Request(ctx context.Context, method, url string, opts *Options) (*Response, error) {
	o := opts.merge(c.defaultOptions())
	raw := o.Raw

	host := c.config.APIHost
	if host == "" {
		host = config.APIHost()
	}
	if host == "" {
		return nil, NewConfigurationError("no API host configured")
	}
	resolved := url
	if !strings.HasPrefix(url, host) {
		resolved = strings.TrimRight(host, "/") + "/" + strings.TrimLeft(url, "/")
	}

	method = strings.ToUpper(method)

	var body io.Reader
	multipartType := ""
	if len(o.Files) > 0 {
		// The multipart writer owns the Content-Type for uploads.
		delete(o.Headers, "Content-Type")
		fields, err := formFields(o.Data)
		if err != nil {
			return nil, NewTransportError(err)
		}
		reader, ct, err := encodeMultipart(fields, o.Files)
		if err != nil {
			return nil, NewTransportError(err)
		}
		body, multipartType = reader, ct
	} else if o.Data != nil {
		encoded, err := json.Marshal(o.Data)
		if err != nil {
			return nil, NewTransportError(err)
		}
		body = bytes.NewReader(encoded)
	}

	timeout := o.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if o.DisableRedirects {
		ctx = context.WithValue(ctx, redirectsDisabledKey{}, true)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "genora.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", resolved),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, resolved, body)
	if err != nil {
		span.RecordError(err)
		return nil, NewTransportError(err)
	}

	if len(o.Params) > 0 {
		q := req.URL.Query()
		for k, v := range o.Params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	for k, v := range o.Headers {
		req.Header.Set(k, v)
	}
	if multipartType != "" {
		req.Header.Set("Content-Type", multipartType)
	}

	requestID := req.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.New().String()
		req.Header.Set("X-Request-Id", requestID)
	}

	auth := o.Auth
	if auth == nil {
		auth = TokenAuth{Token: resolveToken("", c.config.APIKey, c.config.Credentials, c.config.Logger)}
	}
	auth.Authenticate(req)

	c.config.Logger.Debug("API request", map[string]any{
		"method":     method,
		"url":        resolved,
		"request_id": requestID,
	})

	resp, err := c.doer(&o).Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	payload, err := readBody(resp)
	if err != nil {
		span.RecordError(err)
		return nil, NewTransportError(err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       payload,
	}

	if !result.IsSuccess() {
		return nil, c.apiError(result)
	}

	if raw || result.StatusCode == http.StatusNoContent ||
		result.StatusCode == http.StatusMovedPermanently ||
		result.StatusCode == http.StatusFound {
		result.Raw = true
	}
	return result, nil
}

// apiError classifies a non-success response. The well-known client codes
// stay at debug; anything else gets an info diagnostic. Both produce the
// same error kind.
func (c *Client) apiError(resp *Response) *Error {
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		c.config.Logger.Debug("API error", map[string]any{"status": resp.StatusCode})
	default:
		c.config.Logger.Info("API error", map[string]any{"status": resp.StatusCode})
	}
	return NewAPIError(resp)
}

// doer picks the transport for a call. An injected transport always wins;
// otherwise a TLS-insecure variant is built on first use.
func (c *Client) doer(o *Options) Doer {
	if c.config.Transport != nil {
		return c.secure
	}
	if o.InsecureSkipTLS && !c.config.InsecureSkipTLS {
		c.insecureOnce.Do(func() {
			c.insecure = newHTTPClient(true)
		})
		return c.insecure
	}
	return c.secure
}

// readBody drains the response, decompressing gzip and deflate payloads.
// Setting Accept-Encoding explicitly turns off net/http's automatic gzip
// handling, so the pipeline does its own.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	}
	return io.ReadAll(reader)
}
