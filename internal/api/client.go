package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/freshkart/freshkart/internal/config"
)

// TokenSource provides the current bearer token, or "" when the session is
// unauthenticated. The client reads it on every request so a session change
// takes effect immediately without mutating shared header state.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// envelope is the response shape every backend endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client is the shared HTTP client for the backend API.
type Client struct {
	http           *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()

	Auth      *AuthAPI
	Items     *ItemsAPI
	Cart      *CartAPI
	Orders    *OrdersAPI
	Addresses *AddressesAPI
}

// NewClient creates a client for the given base URL. The token source is
// consulted on every outgoing request; requests are sent unauthenticated
// when it returns "".
func NewClient(baseURL string, tokens TokenSource) *Client {
	c := &Client{
		http:    &http.Client{Timeout: config.RequestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
	c.Auth = &AuthAPI{c}
	c.Items = &ItemsAPI{c}
	c.Cart = &CartAPI{c}
	c.Orders = &OrdersAPI{c}
	c.Addresses = &AddressesAPI{c}
	return c
}

// SetUnauthorizedHandler sets the hook invoked whenever the backend rejects
// a request with 401, before the error is returned to the caller. The hook
// is expected to invalidate the local session; the client itself never
// redirects or retries.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do performs one request and decodes the response envelope into out.
// Envelope failures (success:false) and non-2xx statuses become *Error with
// the best available backend message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, decodeErr)
	}
	if !env.Success {
		return &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode payload: %w", method, path, err)
		}
	}
	return nil
}
