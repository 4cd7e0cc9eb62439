// Package hue is a client for the Philips Hue bridge REST API.
//
// The package mirrors the bridge's three access levels: a Portal locates
// bridges on the network, a Bridge registers whitelist users, and a Client
// performs resource operations on behalf of one user. Every level is a plain
// value over captured URL strings; constructing the same level twice yields
// independent, behaviorally identical instances.
//
// Bridge documents (lights, groups, schedules, scenes, sensors, rules,
// configuration) are opaque JSON owned by the bridge. Operations return the
// parsed document as json.RawMessage without interpreting it; the bridge
// reports application errors inside 200 responses, so callers that care
// should run CheckResponse over the result.
package hue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/huectl/huectl/internal/debug"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests and
// embedders may substitute their own transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// caller bundles the injected transport and JSON codec shared by every
// factory level. The zero value falls back to http.DefaultClient and
// encoding/json.
type caller struct {
	// HTTP is the transport used for all requests.
	HTTP Doer
	// Encode serializes request bodies. Defaults to json.Marshal.
	Encode func(v any) ([]byte, error)
	// Decode deserializes response bodies. Defaults to json.Unmarshal.
	Decode func(data []byte, v any) error
}

func newCaller() caller {
	return caller{
		HTTP:   &http.Client{},
		Encode: json.Marshal,
		Decode: json.Unmarshal,
	}
}

func (c caller) transport() Doer {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c caller) encode(v any) ([]byte, error) {
	if c.Encode != nil {
		return c.Encode(v)
	}
	return json.Marshal(v)
}

func (c caller) decode(data []byte, v any) error {
	if c.Decode != nil {
		return c.Decode(data, v)
	}
	return json.Unmarshal(data, v)
}

// do performs one JSON request. A nil body is sent without a request body;
// anything else is serialized through the injected encoder. The response body
// is parsed as JSON and returned as-is. HTTP status codes are deliberately
// not interpreted: the bridge answers 200 for almost everything and signals
// failures inside the document, so a non-2xx body that parses as JSON is
// still a successful call. There are no retries and no timeouts beyond what
// the injected transport imposes.
func (c caller) do(ctx context.Context, method, url string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := c.encode(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.transport().Do(req)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "method", method, "url", url, "error", err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "method", method, "url", url, "status", resp.StatusCode, "duration", time.Since(start))
	}

	var doc json.RawMessage
	if err := c.decode(respBody, &doc); err != nil {
		return nil, fmt.Errorf("bridge response is not valid JSON: %w", err)
	}
	return doc, nil
}

// Verb specializations. GET and DELETE never carry a body regardless of what
// the caller holds; PUT and POST forward theirs unchanged.

func (c caller) get(ctx context.Context, url string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

func (c caller) del(ctx context.Context, url string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, url, nil)
}

func (c caller) put(ctx context.Context, url string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, url, body)
}

func (c caller) post(ctx context.Context, url string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, url, body)
}

// Client is the user-level handle on a Hue bridge. All resource operations
// hang off its service accessors (Lights, Groups, ...). The client keeps no
// state beyond its base URL and the injected collaborators, so a single
// instance is safe for arbitrarily many concurrent calls.
type Client struct {
	caller

	// BaseURL is the whitelisted API root, http://<host>/api/<username>.
	BaseURL string
}

// NewClient returns a user-level client for the bridge at host using an
// existing whitelist username. Equivalent to NewBridge(host).User(username).
func NewClient(host, username string) *Client {
	return NewBridge(host).User(username)
}

// url joins a path segment onto the whitelisted API root.
func (c *Client) url(segment string) string {
	return c.BaseURL + "/" + segment
}

// Do performs an arbitrary request against a path relative to the
// whitelisted API root, for endpoints this package does not model. path may
// start with "/"; an empty path addresses the root (full datastore).
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	url := c.BaseURL
	if path != "" {
		if path[0] != '/' {
			path = "/" + path
		}
		url += path
	}
	return c.do(ctx, method, url, body)
}
