package hue

import (
	"context"
	"encoding/json"
)

// LightsService exposes the /lights endpoints of one client. The service is
// a set of request closures bound at construction; keep it by value.
type LightsService struct {
	list     boundFetch
	newly    boundFetch
	search   boundSend
	get      itemFetchFunc
	setAttrs itemSendFunc
	setState itemSendFunc
	remove   itemFetchFunc
}

// Lights returns the light endpoints.
func (c *Client) Lights() LightsService {
	base := c.url("lights")
	item := childURL(base)
	return LightsService{
		list:     bindFetch(c.get, base),
		newly:    bindFetch(c.get, base+"/new"),
		search:   bindSend(c.post, base),
		get:      paramFetch(c.get, item),
		setAttrs: paramSend(c.put, item),
		setState: paramSend(c.put, facetURL(item, "state")),
		remove:   paramFetch(c.del, item),
	}
}

// List returns every light known to the bridge.
func (s LightsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.list(ctx)
}

// New returns the lights discovered by the last search.
func (s LightsService) New(ctx context.Context) (json.RawMessage, error) {
	return s.newly(ctx)
}

// Search starts a scan for new lights. The bridge scans for about 40 seconds;
// poll New for results.
func (s LightsService) Search(ctx context.Context) (json.RawMessage, error) {
	return s.search(ctx, nil)
}

// Get returns the attributes and state of one light.
func (s LightsService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, id)
}

// SetAttributes updates a light's attributes (PUT /lights/<id>).
func (s LightsService) SetAttributes(ctx context.Context, id string, attrs any) (json.RawMessage, error) {
	return s.setAttrs(ctx, id, attrs)
}

// Rename sets a light's name; shorthand for SetAttributes.
func (s LightsService) Rename(ctx context.Context, id, name string) (json.RawMessage, error) {
	return s.setAttrs(ctx, id, map[string]string{"name": name})
}

// SetState updates a light's state facet (PUT /lights/<id>/state). state is
// serialized as-is, e.g. map[string]any{"on": true, "bri": 128}.
func (s LightsService) SetState(ctx context.Context, id string, state any) (json.RawMessage, error) {
	return s.setState(ctx, id, state)
}

// Delete removes a light from the bridge.
func (s LightsService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return s.remove(ctx, id)
}
