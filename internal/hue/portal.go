package hue

import (
	"context"
	"encoding/json"
)

// DefaultDiscoveryURL is the Philips nupnp portal endpoint listing bridges
// seen on the caller's external IP.
const DefaultDiscoveryURL = "https://www.meethue.com/api/nupnp"

// BridgeInfo is one entry of the portal discovery response.
type BridgeInfo struct {
	ID                string `json:"id"`
	InternalIPAddress string `json:"internalipaddress"`
	MACAddress        string `json:"macaddress,omitempty"`
	Name              string `json:"name,omitempty"`
}

// Portal is the entry point of the factory chain. It locates bridges via the
// remote discovery service and constructs Bridge handles by host.
type Portal struct {
	caller

	// DiscoveryURL overrides the nupnp endpoint, mainly for tests.
	DiscoveryURL string
}

// NewPortal returns a Portal using the default discovery endpoint and a
// plain http.Client transport.
func NewPortal() *Portal {
	return &Portal{caller: newCaller(), DiscoveryURL: DefaultDiscoveryURL}
}

// Discover asks the portal for bridges on the local network. The typed slice
// is decoded from the same document returned raw, so callers can fall back
// to the raw form when the portal reply grows fields this package does not
// model.
func (p *Portal) Discover(ctx context.Context) ([]BridgeInfo, json.RawMessage, error) {
	url := p.DiscoveryURL
	if url == "" {
		url = DefaultDiscoveryURL
	}
	doc, err := p.get(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	var bridges []BridgeInfo
	if err := p.decode(doc, &bridges); err != nil {
		// Non-list reply; hand back the document untouched.
		return nil, doc, nil
	}
	return bridges, doc, nil
}

// Bridge returns a handle on the bridge at host (IP or hostname), carrying
// over the portal's transport and codec.
func (p *Portal) Bridge(host string) *Bridge {
	return &Bridge{caller: p.caller, Host: host}
}
