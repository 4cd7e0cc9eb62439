package hue

import (
	"context"
	"encoding/json"
)

// ScenesService exposes the /scenes endpoints of one client.
type ScenesService struct {
	list   boundFetch
	create boundSend
	get    itemFetchFunc
	modify itemSendFunc
	remove itemFetchFunc
}

// Scenes returns the scene endpoints.
func (c *Client) Scenes() ScenesService {
	base := c.url("scenes")
	item := childURL(base)
	return ScenesService{
		list:   bindFetch(c.get, base),
		create: bindSend(c.post, base),
		get:    paramFetch(c.get, item),
		modify: paramSend(c.put, item),
		remove: paramFetch(c.del, item),
	}
}

// List returns every scene on the bridge.
func (s ScenesService) List(ctx context.Context) (json.RawMessage, error) {
	return s.list(ctx)
}

// Create adds a scene, e.g. map[string]any{"name": ..., "lights": [...]}.
func (s ScenesService) Create(ctx context.Context, attrs any) (json.RawMessage, error) {
	return s.create(ctx, attrs)
}

// Get returns one scene including its stored light states.
func (s ScenesService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, id)
}

// Modify updates a scene's attributes or stored states (PUT /scenes/<id>).
func (s ScenesService) Modify(ctx context.Context, id string, attrs any) (json.RawMessage, error) {
	return s.modify(ctx, id, attrs)
}

// Delete removes a scene.
func (s ScenesService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return s.remove(ctx, id)
}
