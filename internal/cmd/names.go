package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/huectl/huectl/internal/cache"
	"github.com/huectl/huectl/internal/hue"
	"github.com/huectl/huectl/internal/resolve"
)

// resourceNames returns id/name pairs for a collection resource, served from
// the file cache when fresh.
func resourceNames(ctx context.Context, client *hue.Client, resource string) ([]resolve.Named, error) {
	creds, err := resolveCredentials()
	if err != nil {
		return nil, err
	}
	store := cache.NewStore(cache.DefaultDir(), resource, creds.Host, creds.Username)

	var names []resolve.Named
	if store.Get(&names) {
		return names, nil
	}

	var doc json.RawMessage
	switch resource {
	case "lights":
		doc, err = client.Lights().List(ctx)
	case "groups":
		doc, err = client.Groups().List(ctx)
	case "scenes":
		doc, err = client.Scenes().List(ctx)
	case "sensors":
		doc, err = client.Sensors().List(ctx)
	default:
		return nil, fmt.Errorf("no name index for resource %q", resource)
	}
	if err != nil {
		return nil, err
	}

	var items map[string]struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("unexpected %s listing: %w", resource, err)
	}
	for id, item := range items {
		names = append(names, resolve.Named{ID: id, Name: item.Name})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].ID < names[j].ID })

	store.Put(names)
	return names, nil
}

// invalidateNames drops the cached name index for a resource after a
// mutation that may have changed it.
func invalidateNames(resource string) {
	creds, err := resolveCredentials()
	if err != nil {
		return
	}
	cache.NewStore(cache.DefaultDir(), resource, creds.Host, creds.Username).Invalidate()
}

// resolveID turns a user-supplied identifier or name into a resource id.
// When byName is false the argument passes through untouched.
func resolveID(ctx context.Context, client *hue.Client, resource, arg string, byName bool) (string, error) {
	if !byName {
		return arg, nil
	}
	names, err := resourceNames(ctx, client, resource)
	if err != nil {
		return "", err
	}
	id, err := resolve.Name(arg, names)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s %q: %w", resource, arg, err)
	}
	return id, nil
}
