package hue

import (
	"context"
	"encoding/json"
)

// Bridge is the pre-authentication handle on one bridge. Its only operation
// is whitelist user creation; everything else requires a username and lives
// on Client.
type Bridge struct {
	caller

	// Host is the bridge IP or hostname, without scheme.
	Host string
}

// NewBridge returns a handle on the bridge at host with a default transport
// and codec.
func NewBridge(host string) *Bridge {
	return &Bridge{caller: newCaller(), Host: host}
}

// apiURL is the unauthenticated API root, http://<host>/api.
func (b *Bridge) apiURL() string {
	return "http://" + b.Host + "/api"
}

// CreateUser registers a whitelist user. The bridge only accepts this while
// its link button is pressed; otherwise it answers with error type 101,
// which surfaces here as *BridgeError. devicetype identifies the
// application, conventionally "app_name#device".
//
// Returns the generated username alongside the raw response document.
func (b *Bridge) CreateUser(ctx context.Context, devicetype string) (string, json.RawMessage, error) {
	doc, err := b.post(ctx, b.apiURL(), map[string]string{"devicetype": devicetype})
	if err != nil {
		return "", nil, err
	}
	if err := CheckResponse(doc); err != nil {
		return "", doc, err
	}
	var results []struct {
		Success struct {
			Username string `json:"username"`
		} `json:"success"`
	}
	if err := b.decode(doc, &results); err == nil {
		for _, r := range results {
			if r.Success.Username != "" {
				return r.Success.Username, doc, nil
			}
		}
	}
	return "", doc, nil
}

// User returns the user-level client for an existing whitelist username,
// carrying over the bridge's transport and codec.
func (b *Bridge) User(username string) *Client {
	return &Client{caller: b.caller, BaseURL: b.apiURL() + "/" + username}
}
