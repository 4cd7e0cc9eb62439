package hue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// recorded captures the last request a test server observed.
type recorded struct {
	Method  string
	Path    string
	Body    string
	HasBody bool
}

// newTestServer returns an httptest server answering every request with
// response, and a pointer that tracks the last request seen.
func newTestServer(t *testing.T, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Body = string(body)
		rec.HasBody = len(body) > 0
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

// testClient returns a user-level client pointed at the test server.
func testClient(server *httptest.Server, username string) *Client {
	host := strings.TrimPrefix(server.URL, "http://")
	return NewClient(host, username)
}

func TestDoVerbSemantics(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c caller, url string) error
		method   string
		wantBody string
	}{
		{
			name: "get sends no body",
			call: func(c caller, url string) error {
				_, err := c.get(context.Background(), url)
				return err
			},
			method: http.MethodGet,
		},
		{
			name: "delete sends no body",
			call: func(c caller, url string) error {
				_, err := c.del(context.Background(), url)
				return err
			},
			method: http.MethodDelete,
		},
		{
			name: "put serializes body",
			call: func(c caller, url string) error {
				_, err := c.put(context.Background(), url, map[string]bool{"on": true})
				return err
			},
			method:   http.MethodPut,
			wantBody: `{"on":true}`,
		},
		{
			name: "post serializes body",
			call: func(c caller, url string) error {
				_, err := c.post(context.Background(), url, map[string]string{"devicetype": "huectl"})
				return err
			},
			method:   http.MethodPost,
			wantBody: `{"devicetype":"huectl"}`,
		},
		{
			name: "put with nil body sends none",
			call: func(c caller, url string) error {
				_, err := c.put(context.Background(), url, nil)
				return err
			},
			method: http.MethodPut,
		},
		{
			name: "post with nil body sends none",
			call: func(c caller, url string) error {
				_, err := c.post(context.Background(), url, nil)
				return err
			},
			method: http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, rec := newTestServer(t, `{"ok":true}`)
			if err := tt.call(newCaller(), server.URL); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Method != tt.method {
				t.Errorf("expected method %s, got %s", tt.method, rec.Method)
			}
			if tt.wantBody == "" && rec.HasBody {
				t.Errorf("expected no request body, got %q", rec.Body)
			}
			if tt.wantBody != "" && rec.Body != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body)
			}
		})
	}
}

func TestDoStatusCodesAreNotInterpreted(t *testing.T) {
	for _, status := range []int{200, 201, 404, 500} {
		t.Run(fmt.Sprintf("status %d", status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"answer":42}`))
			}))
			defer server.Close()

			doc, err := newCaller().get(context.Background(), server.URL)
			if err != nil {
				t.Fatalf("status %d should not be an error: %v", status, err)
			}
			if string(doc) != `{"answer":42}` {
				t.Errorf("unexpected document: %s", doc)
			}
		})
	}
}

func TestDoInvalidJSONResponse(t *testing.T) {
	server, _ := newTestServer(t, `not json at all`)
	_, err := newCaller().get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Errorf("unexpected error: %v", err)
	}
}

type failingDoer struct{ err error }

func (d failingDoer) Do(*http.Request) (*http.Response, error) { return nil, d.err }

func TestDoTransportFailurePropagates(t *testing.T) {
	cause := errors.New("connection refused")
	c := newCaller()
	c.HTTP = failingDoer{err: cause}

	_, err := c.get(context.Background(), "http://10.0.0.5/api")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped transport error, got %v", err)
	}
}

func TestDoEncodeFailure(t *testing.T) {
	server, rec := newTestServer(t, `{}`)
	c := newCaller()
	c.Encode = func(any) ([]byte, error) { return nil, errors.New("boom") }

	_, err := c.put(context.Background(), server.URL, map[string]bool{"on": true})
	if err == nil {
		t.Fatal("expected encode error, got nil")
	}
	if rec.Method != "" {
		t.Error("request must not be issued when serialization fails")
	}
}

func TestDoInjectedCodecIsUsed(t *testing.T) {
	server, rec := newTestServer(t, `{"ok":true}`)
	c := newCaller()
	encoded := false
	decoded := false
	c.Encode = func(v any) ([]byte, error) {
		encoded = true
		return []byte(`{"custom":1}`), nil
	}
	c.Decode = func(data []byte, v any) error {
		decoded = true
		if raw, ok := v.(*json.RawMessage); ok {
			*raw = data
		}
		return nil
	}

	_, err := c.post(context.Background(), server.URL, map[string]int{"x": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !encoded {
		t.Error("injected encoder was not used")
	}
	if !decoded {
		t.Error("injected decoder was not used")
	}
	if rec.Body != `{"custom":1}` {
		t.Errorf("expected injected encoding on the wire, got %q", rec.Body)
	}
}

func TestClientDoRelativePath(t *testing.T) {
	server, rec := newTestServer(t, `{}`)
	client := testClient(server, "abc")

	if _, err := client.Do(context.Background(), http.MethodGet, "lights/3", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Path != "/api/abc/lights/3" {
		t.Errorf("expected path /api/abc/lights/3, got %s", rec.Path)
	}

	if _, err := client.Do(context.Background(), http.MethodGet, "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Path != "/api/abc" {
		t.Errorf("expected datastore root path /api/abc, got %s", rec.Path)
	}
}

func TestIndependentClientsDoNotShareIdentity(t *testing.T) {
	a := NewClient("10.0.0.5", "abc")
	b := NewClient("10.0.0.5", "abc")
	if a == b {
		t.Fatal("expected distinct client instances")
	}
	if a.BaseURL != b.BaseURL {
		t.Errorf("expected identical URL behavior, got %q vs %q", a.BaseURL, b.BaseURL)
	}
	if a.BaseURL != "http://10.0.0.5/api/abc" {
		t.Errorf("unexpected base URL %q", a.BaseURL)
	}
}
