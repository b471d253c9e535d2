package client

import (
	"context"
	"fmt"
)

// Get issues a GET request and decodes the JSON response into T.
func Get[T any](ctx context.Context, c *Client, url string, params map[string]string, opts *Options) (T, error) {
	var out T
	resp, err := c.Get(ctx, url, params, opts)
	if err != nil {
		return out, err
	}
	return decodeInto[T](resp)
}

// Post issues a POST request and decodes the JSON response into T.
func Post[T any](ctx context.Context, c *Client, url string, data any, opts *Options) (T, error) {
	var out T
	resp, err := c.Post(ctx, url, data, opts)
	if err != nil {
		return out, err
	}
	return decodeInto[T](resp)
}

// Put issues a PUT request and decodes the JSON response into T.
func Put[T any](ctx context.Context, c *Client, url string, data any, opts *Options) (T, error) {
	var out T
	resp, err := c.Put(ctx, url, data, opts)
	if err != nil {
		return out, err
	}
	return decodeInto[T](resp)
}

// Delete issues a DELETE request and decodes the JSON response into T.
// Responses without a body (e.g. 204) leave T at its zero value.
func Delete[T any](ctx context.Context, c *Client, url string, opts *Options) (T, error) {
	var out T
	resp, err := c.Delete(ctx, url, opts)
	if err != nil {
		return out, err
	}
	if resp.Raw && len(resp.Body) == 0 {
		return out, nil
	}
	return decodeInto[T](resp)
}

func decodeInto[T any](resp *Response) (T, error) {
	var out T
	if len(resp.Body) == 0 {
		return out, nil
	}
	if err := resp.Decode(&out); err != nil {
		return out, fmt.Errorf("genora: decode response: %w", err)
	}
	return out, nil
}
