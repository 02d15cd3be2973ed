// Package api is the HTTP gateway to the remote skills service.
//
// All authenticated requests carry a bearer token obtained from a
// TokenSource. Calls are independent: there is no retry, no backoff and
// no client-side timeout — cancellation happens only through the
// caller's context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNoToken is returned when an authenticated call is attempted
// without a stored session token.
var ErrNoToken = errors.New("no session token")

// ErrUnauthorized is returned when the service rejects the token.
var ErrUnauthorized = errors.New("unauthorized")

// TokenSource provides the current session token, if any.
type TokenSource interface {
	Token() (string, bool)
}

// Error is a non-2xx response from the service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the skills service.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
}

// New creates a client against the given base URL. tokens may be nil
// for a client that only performs unauthenticated calls.
func New(baseURL string, tokens TokenSource) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	return &Client{
		base:   base,
		http:   &http.Client{},
		tokens: tokens,
	}, nil
}

// do issues a request against path (relative to the base URL) and
// decodes a JSON response body into out when out is non-nil.
// When authed is true the bearer token is attached; a missing token
// fails with ErrNoToken before any request is made.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, authed bool) error {
	var token string
	if authed {
		var ok bool
		if c.tokens == nil {
			return ErrNoToken
		}
		token, ok = c.tokens.Token()
		if !ok {
			return ErrNoToken
		}
	}

	ref := &url.URL{Path: path}
	u := c.base.ResolveReference(ref)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}
