package hue

import (
	"context"
	"encoding/json"
)

// SchedulesService exposes the /schedules endpoints of one client.
type SchedulesService struct {
	list   boundFetch
	create boundSend
	get    itemFetchFunc
	set    itemSendFunc
	remove itemFetchFunc
}

// Schedules returns the schedule endpoints.
func (c *Client) Schedules() SchedulesService {
	base := c.url("schedules")
	item := childURL(base)
	return SchedulesService{
		list:   bindFetch(c.get, base),
		create: bindSend(c.post, base),
		get:    paramFetch(c.get, item),
		set:    paramSend(c.put, item),
		remove: paramFetch(c.del, item),
	}
}

// List returns every schedule on the bridge.
func (s SchedulesService) List(ctx context.Context) (json.RawMessage, error) {
	return s.list(ctx)
}

// Create adds a schedule. The bridge expects at least name, command and time.
func (s SchedulesService) Create(ctx context.Context, attrs any) (json.RawMessage, error) {
	return s.create(ctx, attrs)
}

// Get returns one schedule.
func (s SchedulesService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, id)
}

// Set updates a schedule's attributes (PUT /schedules/<id>).
func (s SchedulesService) Set(ctx context.Context, id string, attrs any) (json.RawMessage, error) {
	return s.set(ctx, id, attrs)
}

// Delete removes a schedule.
func (s SchedulesService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	return s.remove(ctx, id)
}
