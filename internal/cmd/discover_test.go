package cmd

import (
	"strings"
	"testing"
)

func TestDiscoverCommand_Text(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/nupnp", jsonResponse(200,
			`[{"id": "001788fffe100491", "internalipaddress": "10.0.0.5"}]`))
	server := setupTestEnv(t, handler)
	t.Setenv("HUECTL_DISCOVERY_URL", server.URL+"/api/nupnp")

	stdout, _, err := runCommand(t, "discover", "--no-cache", "-o", "text")
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if !strings.Contains(stdout, "001788fffe100491\t10.0.0.5") {
		t.Errorf("output missing bridge row: %s", stdout)
	}
}

func TestDiscoverCommand_JSON(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/nupnp", jsonResponse(200,
			`[{"id": "001788fffe100491", "internalipaddress": "10.0.0.5"}]`))
	server := setupTestEnv(t, handler)
	t.Setenv("HUECTL_DISCOVERY_URL", server.URL+"/api/nupnp")

	stdout, _, err := runCommand(t, "discover", "--no-cache")
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if !strings.Contains(stdout, `"internalipaddress": "10.0.0.5"`) &&
		!strings.Contains(stdout, `"internalipaddress":"10.0.0.5"`) {
		t.Errorf("output missing bridge address: %s", stdout)
	}
}

func TestDiscoverCommand_NoBridges(t *testing.T) {
	handler := newRouteHandler().
		On("GET", "/api/nupnp", jsonResponse(200, `[]`))
	server := setupTestEnv(t, handler)
	t.Setenv("HUECTL_DISCOVERY_URL", server.URL+"/api/nupnp")

	stdout, _, err := runCommand(t, "discover", "--no-cache", "-o", "text")
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if !strings.Contains(stdout, "No bridges found") {
		t.Errorf("output = %s", stdout)
	}
}
