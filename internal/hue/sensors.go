package hue

import (
	"context"
	"encoding/json"
)

// SensorsService exposes the /sensors endpoints of one client.
type SensorsService struct {
	list      boundFetch
	newly     boundFetch
	create    boundSend
	get       itemFetchFunc
	setAttrs  itemSendFunc
	setConfig itemSendFunc
	setState  itemSendFunc
	remove    itemFetchFunc
}

// Sensors returns the sensor endpoints.
func (c *Client) Sensors() SensorsService {
	base := c.url("sensors")
	item := childURL(base)
	return SensorsService{
		list:      bindFetch(c.get, base),
		newly:     bindFetch(c.get, base+"/new"),
		create:    bindSend(c.post, base),
		get:       paramFetch(c.get, item),
		setAttrs:  paramSend(c.put, item),
		setConfig: paramSend(c.put, facetURL(item, "config")),
		setState:  paramSend(c.put, facetURL(item, "state")),
		remove:    paramFetch(c.del, item),
	}
}

// List returns every sensor on the bridge.
func (s SensorsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.list(ctx)
}

// New returns the sensors discovered by the last search.
func (s SensorsService) New(ctx context.Context) (json.RawMessage, error) {
	return s.newly(ctx)
}

// Create adds a (CLIP) sensor.
func (s SensorsService) Create(ctx context.Context, attrs any) (json.RawMessage, error) {
	return s.create(ctx, attrs)
}

// Get returns one sensor.
func (s SensorsService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, id)
}

// Rename sets a sensor's name (PUT /sensors/<id>).
func (s SensorsService) Rename(ctx context.Context, id, name string) (json.RawMessage, error) {
	return s.setAttrs(ctx, id, map[string]string{"name": name})
}

// SetConfig updates a sensor's config facet (PUT /sensors/<id>/config).
func (s SensorsService) SetConfig(ctx context.Context, id string, config any) (json.RawMessage, error) {
	return s.setConfig(ctx, id, config)
}

// SetState updates a (CLIP) sensor's state facet (PUT /sensors/<id>/state).
func (s SensorsService) SetState(ctx context.Context, id string, state any) (json.RawMessage, error) {
	return s.setState(ctx, id, state)
}

// Delete removes a sensor.
func (s SensorsService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return s.remove(ctx, id)
}
