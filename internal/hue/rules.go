package hue

import (
	"context"
	"encoding/json"
)

// RulesService exposes the /rules endpoints of one client.
type RulesService struct {
	list   boundFetch
	create boundSend
	get    itemFetchFunc
	update itemSendFunc
	remove itemFetchFunc
}

// Rules returns the rule endpoints.
func (c *Client) Rules() RulesService {
	base := c.url("rules")
	item := childURL(base)
	return RulesService{
		list:   bindFetch(c.get, base),
		create: bindSend(c.post, base),
		get:    paramFetch(c.get, item),
		update: paramSend(c.put, item),
		remove: paramFetch(c.del, item),
	}
}

// List returns every rule on the bridge.
func (s RulesService) List(ctx context.Context) (json.RawMessage, error) {
	return s.list(ctx)
}

// Create adds a rule with conditions and actions.
func (s RulesService) Create(ctx context.Context, attrs any) (json.RawMessage, error) {
	return s.create(ctx, attrs)
}

// Get returns one rule.
func (s RulesService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, id)
}

// Update rewrites a rule's conditions or actions (PUT /rules/<id>).
func (s RulesService) Update(ctx context.Context, id string, attrs any) (json.RawMessage, error) {
	return s.update(ctx, id, attrs)
}

// Delete removes a rule.
func (s RulesService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return s.remove(ctx, id)
}
