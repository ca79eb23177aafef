// Package client is the typed boundary to the Pahunapath HTTP API. Every call
// returns a validated value or an error; server rejections surface as
// *APIError and unexpected payloads as ErrMalformedResponse.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 10 << 20
)

var validate = validator.New()

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithSession returns a copy of c that authenticates with token.
func (c *Client) WithSession(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	TraceID string            `json:"trace_id"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`

	// Users is the older list shape some deployments still return.
	Users json.RawMessage `json:"users"`
}

func (e envelope) payload() json.RawMessage {
	if len(e.Data) > 0 && string(e.Data) != "null" {
		return e.Data
	}
	if len(e.Users) > 0 && string(e.Users) != "null" {
		return e.Users
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any) (envelope, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return envelope{}, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Debug("close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return envelope{}, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest || (decodeErr == nil && env.Status == "error") {
		apiErr := &APIError{Status: resp.StatusCode, Message: GenericErrorMessage}
		if decodeErr == nil {
			if msg := strings.TrimSpace(env.Message); msg != "" {
				apiErr.Message = msg
			}
			apiErr.Fields = env.Errors
			apiErr.TraceID = env.TraceID
		}
		return envelope{}, apiErr
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	return env, nil
}

// decodeInto unmarshals the envelope payload into out and validates it.
func decodeInto(env envelope, out any) error {
	data := env.payload()
	if data == nil {
		return fmt.Errorf("%w: missing data", ErrMalformedResponse)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func decodeList[T any](env envelope) ([]T, error) {
	data := env.payload()
	if data == nil {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for i := range out {
		if err := validate.Struct(&out[i]); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedResponse, i, err)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
