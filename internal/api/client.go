// Package api is a minimal client for the Workers KV HTTP API. It performs
// single authenticated requests and reports outcomes; it does not retry,
// paginate, or chunk on the caller's behalf.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 30 * time.Second

// Credentials is the authentication material attached to every request.
// APIToken takes precedence; otherwise the Email/APIKey pair is used.
type Credentials struct {
	APIToken string
	Email    string
	APIKey   string
}

// Client talks to the store API. It holds no cross-invocation state; build
// one per command with the options you need and discard it afterwards.
type Client struct {
	baseURL string
	creds   Credentials
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http client entirely.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client with the given credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		creds:   creds,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.creds.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.APIToken)
	} else {
		req.Header.Set("X-Auth-Email", c.creds.Email)
		req.Header.Set("X-Auth-Key", c.creds.APIKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doEnvelope performs a request against a JSON-envelope endpoint and decodes
// the result into out (which may be nil when the result is irrelevant).
func (c *Client) doEnvelope(ctx context.Context, method, path string, body io.Reader, out interface{}) (*ResultInfo, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(data, &env); jsonErr != nil {
		// Gateway errors (413, 504, ...) answer with non-JSON bodies and no
		// store error codes.
		if resp.StatusCode >= 400 {
			return nil, &Failure{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("invalid response from API (HTTP %d): %w", resp.StatusCode, jsonErr)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &Failure{StatusCode: resp.StatusCode, Errors: env.Errors}
	}

	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return nil, fmt.Errorf("failed to decode result: %w", err)
		}
	}
	return env.ResultInfo, nil
}

// doRaw performs a request against an endpoint that returns the value bytes
// directly on success (key reads) and the JSON envelope on error.
func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var env envelope
		if json.Unmarshal(data, &env) == nil {
			return nil, &Failure{StatusCode: resp.StatusCode, Errors: env.Errors}
		}
		return nil, &Failure{StatusCode: resp.StatusCode}
	}
	return data, nil
}

func jsonBody(v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}
