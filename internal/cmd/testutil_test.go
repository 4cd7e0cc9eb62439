package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/huectl/huectl/internal/iocontext"
)

// routeHandler routes requests by exact "METHOD PATH" match and returns 404
// for anything unregistered.
type routeHandler struct {
	routes map[string]http.HandlerFunc
}

func newRouteHandler() *routeHandler {
	return &routeHandler{routes: make(map[string]http.HandlerFunc)}
}

func (rh *routeHandler) On(method, path string, handler http.HandlerFunc) *routeHandler {
	rh.routes[method+" "+path] = handler
	return rh
}

func (rh *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if handler, ok := rh.routes[r.Method+" "+r.URL.Path]; ok {
		handler(w, r)
		return
	}
	http.NotFound(w, r)
}

func jsonResponse(statusCode int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}
}

// setupTestEnv starts a mock bridge and points the CLI at it through the
// environment. The test username is "testuser", so handler paths start with
// /api/testuser/. The file cache is disabled so tests never touch the real
// cache directory.
func setupTestEnv(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("HUECTL_BRIDGE", strings.TrimPrefix(server.URL, "http://"))
	t.Setenv("HUECTL_USERNAME", "testuser")
	t.Setenv("HUECTL_NO_CACHE", "1")

	return server
}

// runCommand executes the command tree with captured output streams.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ctx := iocontext.WithIO(context.Background(), &iocontext.IO{
		Out:    &out,
		ErrOut: &errOut,
		In:     strings.NewReader(""),
	})
	err = Execute(ctx, args)
	return out.String(), errOut.String(), err
}
