package cmd

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICommand_Get(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/testuser/lights/3", jsonResponse(200, `{"name": "Desk Lamp"}`))
	setupTestEnv(t, handler)

	stdout, _, err := runCommand(t, "api", "GET", "lights/3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Desk Lamp")
}

func TestAPICommand_PutWithBody(t *testing.T) {
	var body map[string]any
	handler := newRouteHandler().
		On("PUT", "/api/testuser/lights/3/state", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"success":{"/lights/3/state/on":false}}]`))
		})
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "api", "put", "lights/3/state", `{"on":false}`)
	require.NoError(t, err)
	assert.Equal(t, false, body["on"])
}

func TestAPICommand_LowercaseMethodAccepted(t *testing.T) {
	handler := newRouteHandler().
		On("DELETE", "/api/testuser/schedules/2", jsonResponse(200, `[{"success":"/schedules/2 deleted"}]`))
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "api", "delete", "schedules/2")
	require.NoError(t, err)
}

func TestAPICommand_UnsupportedMethod(t *testing.T) {
	setupTestEnv(t, newRouteHandler())

	_, _, err := runCommand(t, "api", "PATCH", "lights/3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported method")
}

func TestAPICommand_InvalidBody(t *testing.T) {
	setupTestEnv(t, newRouteHandler())

	_, _, err := runCommand(t, "api", "PUT", "lights/3/state", `{not json`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request body")
}

func TestAPICommand_ErrorsPassThroughWithoutCheck(t *testing.T) {
	errDoc := `[{"error":{"type":3,"address":"/lights/99","description":"resource not available"}}]`
	handler := newRouteHandler().
		On("GET", "/api/testuser/lights/99", jsonResponse(200, errDoc))
	setupTestEnv(t, handler)

	stdout, _, err := runCommand(t, "api", "GET", "lights/99")
	require.NoError(t, err)
	assert.Contains(t, stdout, "resource not available")
}

func TestAPICommand_CheckFailsOnBridgeError(t *testing.T) {
	errDoc := `[{"error":{"type":3,"address":"/lights/99","description":"resource not available"}}]`
	handler := newRouteHandler().
		On("GET", "/api/testuser/lights/99", jsonResponse(200, errDoc))
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "api", "GET", "lights/99", "--check")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "resource not available"), "error = %v", err)
}
