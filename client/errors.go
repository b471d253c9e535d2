package client

import (
	"errors"
	"fmt"
)

// Kind classifies request failures.
type Kind int

const (
	// KindConfiguration means the call could not be attempted at all
	// (no API host configured).
	KindConfiguration Kind = iota
	// KindTransport means the network call itself failed: connection
	// refused, DNS failure, timeout, TLS, or malformed request
	// construction.
	KindTransport
	// KindAPI means the server answered with a non-success status code.
	KindAPI
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is the structured failure type produced by the request pipeline.
// Exactly one Kind applies per call.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Message describes the failure. For API errors this is the
	// server-provided detail when the body carries one.
	Message string
	// Response is the full server response (KindAPI only).
	Response *Response
	// Err is the underlying error (KindTransport only).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindAPI && e.Response != nil {
		return fmt.Sprintf("genora: %s (HTTP %d): %s", e.Kind, e.Response.StatusCode, e.Message)
	}
	return fmt.Sprintf("genora: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// NewConfigurationError creates a configuration error.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewTransportError wraps a failed network call. The message carries the
// underlying error's type name so callers can tell timeouts from DNS
// failures without unwrapping.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: fmt.Sprintf("%T: %v", err, err),
		Err:     err,
	}
}

// NewAPIError wraps a non-success server response.
func NewAPIError(resp *Response) *Error {
	return &Error{Kind: KindAPI, Message: serverMessage(resp), Response: resp}
}

// serverMessage extracts the server-provided error detail when the body is
// a JSON object with a detail, message, or error field.
func serverMessage(resp *Response) string {
	if doc, err := resp.JSON(); err == nil {
		if obj, ok := doc.(map[string]any); ok {
			for _, key := range []string{"detail", "message", "error"} {
				if v, ok := obj[key].(string); ok && v != "" {
					return v
				}
			}
		}
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfiguration
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

// IsAPI checks if an error is an API error.
func IsAPI(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindAPI
}

// APIResponse returns the server response attached to an API error.
func APIResponse(err error) (*Response, bool) {
	var e *Error
	if errors.As(err, &e) && e.Response != nil {
		return e.Response, true
	}
	return nil, false
}
