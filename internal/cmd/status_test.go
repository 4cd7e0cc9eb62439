package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/testuser/config", jsonResponse(200, `{"name": "Hallway Bridge", "swversion": "1960"}`)).
		On("GET", "/api/testuser/lights", jsonResponse(200, `{"1": {"name": "Desk Lamp"}}`)).
		On("GET", "/api/testuser/groups", jsonResponse(200, `{"1": {"name": "Living Room"}}`)).
		On("GET", "/api/testuser/sensors", jsonResponse(200, `{}`)).
		On("GET", "/api/testuser/schedules", jsonResponse(200, `{}`))
	setupTestEnv(t, handler)

	stdout, _, err := runCommand(t, "status")
	require.NoError(t, err)

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	for _, key := range []string{"bridge", "lights", "groups", "sensors", "schedules"} {
		assert.Contains(t, report, key)
	}
	assert.Contains(t, string(report["bridge"]), "Hallway Bridge")
	assert.Contains(t, string(report["lights"]), "Desk Lamp")
}

func TestStatusCommand_FetchFailure(t *testing.T) {
	// No routes registered: every fetch gets a 404 text body, which is not
	// valid JSON, so the status fetch fails.
	setupTestEnv(t, newRouteHandler())

	_, _, err := runCommand(t, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status fetch failed")
}
