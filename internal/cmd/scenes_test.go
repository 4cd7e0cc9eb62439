package cmd

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenesRecallCommand(t *testing.T) {
	var action map[string]any
	handler := newRouteHandler().
		On("PUT", "/api/testuser/groups/0/action", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&action)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"success":{"/groups/0/action/scene":"ab-12"}}]`))
		})
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "scenes", "recall", "ab-12")
	require.NoError(t, err)
	assert.Equal(t, "ab-12", action["scene"])
}

func TestScenesRecallCommand_SpecificGroup(t *testing.T) {
	var action map[string]any
	handler := newRouteHandler().
		On("PUT", "/api/testuser/groups/2/action", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&action)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"success":{"/groups/2/action/scene":"ab-12"}}]`))
		})
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "scenes", "recall", "ab-12", "--group", "2")
	require.NoError(t, err)
	assert.Equal(t, "ab-12", action["scene"])
}

func TestScenesCreateCommand(t *testing.T) {
	var body map[string]any
	handler := newRouteHandler().
		On("POST", "/api/testuser/scenes", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"success":{"id":"ab-12"}}]`))
		})
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "scenes", "create", "--scene-name", "Movie Night", "--light", "1", "--light", "2")
	require.NoError(t, err)
	assert.Equal(t, "Movie Night", body["name"])
	assert.Equal(t, []any{"1", "2"}, body["lights"])
}

func TestScenesCreateCommand_RequiresLights(t *testing.T) {
	setupTestEnv(t, newRouteHandler())

	_, _, err := runCommand(t, "scenes", "create", "--scene-name", "Movie Night")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--light")
}

func TestGroupsCreateCommand(t *testing.T) {
	var body map[string]any
	handler := newRouteHandler().
		On("POST", "/api/testuser/groups", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"success":{"id":"3"}}]`))
		})
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "groups", "create", "--group-name", "Living Room", "--light", "1", "--light", "2")
	require.NoError(t, err)
	assert.Equal(t, "Living Room", body["name"])
	assert.Equal(t, []any{"1", "2"}, body["lights"])
}

func TestGroupsSetCommand_Scene(t *testing.T) {
	var action map[string]any
	handler := newRouteHandler().
		On("PUT", "/api/testuser/groups/1/action", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&action)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"success":{"/groups/1/action/scene":"ab-12"}}]`))
		})
	setupTestEnv(t, handler)

	_, _, err := runCommand(t, "groups", "set", "1", "--scene", "ab-12")
	require.NoError(t, err)
	assert.Equal(t, "ab-12", action["scene"])
}
