package hue

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name         string
		responseBody string
		wantUsername string
		wantErrType  int
	}{
		{
			name:         "success",
			responseBody: `[{"success":{"username":"83b7780291a6ceffbe0bd049104df"}}]`,
			wantUsername: "83b7780291a6ceffbe0bd049104df",
		},
		{
			name:         "link button not pressed",
			responseBody: `[{"error":{"type":101,"address":"","description":"link button not pressed"}}]`,
			wantErrType:  101,
		},
		{
			name:         "unrecognized reply passes through",
			responseBody: `{"weird":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, rec := newTestServer(t, tt.responseBody)
			bridge := NewBridge(strings.TrimPrefix(server.URL, "http://"))

			username, raw, err := bridge.CreateUser(context.Background(), "huectl#test")

			if rec.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", rec.Method)
			}
			if rec.Path != "/api" {
				t.Errorf("expected path /api, got %s", rec.Path)
			}
			if rec.Body != `{"devicetype":"huectl#test"}` {
				t.Errorf("unexpected body %q", rec.Body)
			}

			if tt.wantErrType != 0 {
				var bridgeErr *BridgeError
				if !errors.As(err, &bridgeErr) {
					t.Fatalf("expected *BridgeError, got %v", err)
				}
				if bridgeErr.Type != tt.wantErrType {
					t.Errorf("expected error type %d, got %d", tt.wantErrType, bridgeErr.Type)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if username != tt.wantUsername {
				t.Errorf("expected username %q, got %q", tt.wantUsername, username)
			}
			if string(raw) != tt.responseBody {
				t.Errorf("raw document not passed through: %s", raw)
			}
		})
	}
}

func TestBridgeUserBaseURL(t *testing.T) {
	client := NewBridge("10.0.0.5").User("abc")
	if client.BaseURL != "http://10.0.0.5/api/abc" {
		t.Errorf("unexpected base URL %q", client.BaseURL)
	}
}

func TestBridgeUserInstancesAreIndependent(t *testing.T) {
	bridge := NewBridge("10.0.0.5")
	a := bridge.User("abc")
	b := bridge.User("abc")
	if a == b {
		t.Fatal("expected distinct instances")
	}
	if a.BaseURL != b.BaseURL {
		t.Errorf("expected identical URL behavior, got %q vs %q", a.BaseURL, b.BaseURL)
	}
}
