package hue

import (
	"context"
	"encoding/json"
)

// GroupsService exposes the /groups endpoints of one client.
type GroupsService struct {
	list      boundFetch
	create    boundSend
	get       itemFetchFunc
	setAttrs  itemSendFunc
	setAction itemSendFunc
	remove    itemFetchFunc
}

// Groups returns the group endpoints.
func (c *Client) Groups() GroupsService {
	base := c.url("groups")
	item := childURL(base)
	return GroupsService{
		list:      bindFetch(c.get, base),
		create:    bindSend(c.post, base),
		get:       paramFetch(c.get, item),
		setAttrs:  paramSend(c.put, item),
		setAction: paramSend(c.put, facetURL(item, "action")),
		remove:    paramFetch(c.del, item),
	}
}

// List returns every group configured on the bridge. Group "0" (all lights)
// is implicit and not part of the listing.
func (s GroupsService) List(ctx context.Context) (json.RawMessage, error) {
	return s.list(ctx)
}

// Create adds a group, e.g. map[string]any{"name": ..., "lights": [...]}.
func (s GroupsService) Create(ctx context.Context, attrs any) (json.RawMessage, error) {
	return s.create(ctx, attrs)
}

// Get returns the attributes and state of one group.
func (s GroupsService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, id)
}

// SetAttributes updates a group's name or membership (PUT /groups/<id>).
func (s GroupsService) SetAttributes(ctx context.Context, id string, attrs any) (json.RawMessage, error) {
	return s.setAttrs(ctx, id, attrs)
}

// SetState applies a light state to every member of the group
// (PUT /groups/<id>/action). Use id "0" to address all lights.
func (s GroupsService) SetState(ctx context.Context, id string, action any) (json.RawMessage, error) {
	return s.setAction(ctx, id, action)
}

// Delete removes a group.
func (s GroupsService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return s.remove(ctx, id)
}
