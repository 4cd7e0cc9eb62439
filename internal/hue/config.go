package hue

import (
	"context"
	"encoding/json"
)

// ConfigService exposes the bridge configuration endpoints of one client.
type ConfigService struct {
	get        boundFetch
	set        boundSend
	deleteUser itemFetchFunc
}

// Config returns the bridge configuration endpoints.
func (c *Client) Config() ConfigService {
	base := c.url("config")
	return ConfigService{
		get:        bindFetch(c.get, base),
		set:        bindSend(c.put, base),
		deleteUser: paramFetch(c.del, childURL(base+"/whitelist")),
	}
}

// Get returns the bridge configuration, including the whitelist.
func (s ConfigService) Get(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx)
}

// Set updates configuration fields (PUT /config), e.g.
// map[string]any{"name": "kitchen bridge"}.
func (s ConfigService) Set(ctx context.Context, attrs any) (json.RawMessage, error) {
	return s.set(ctx, attrs)
}

// DeleteUser removes a whitelist entry (DELETE /config/whitelist/<username>).
func (s ConfigService) DeleteUser(ctx context.Context, username string) (json.RawMessage, error) {
	return s.deleteUser(ctx, username)
}

// InfoService exposes the datastore-wide read endpoints of one client.
type InfoService struct {
	fullState boundFetch
	timezones boundFetch
}

// Info returns the datastore-wide endpoints.
func (c *Client) Info() InfoService {
	return InfoService{
		fullState: bindFetch(c.get, c.BaseURL),
		timezones: bindFetch(c.get, c.url("info/timezones")),
	}
}

// FullState returns the entire bridge datastore in one document.
func (s InfoService) FullState(ctx context.Context) (json.RawMessage, error) {
	return s.fullState(ctx)
}

// Timezones returns the timezone names the bridge accepts in schedules.
func (s InfoService) Timezones(ctx context.Context) (json.RawMessage, error) {
	return s.timezones(ctx)
}
