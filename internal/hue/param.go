package hue

import (
	"context"
	"encoding/json"
)

// The bridge addresses individual resources as <collection>/<id> and nested
// facets as <collection>/<id>/<facet>. The helpers here derive identifier-
// taking request functions from a verb and a URL generator, so each service
// factory can bind its endpoints once and hand out closures.

// urlFunc maps a resource identifier to a fully formed endpoint URL.
type urlFunc func(id string) string

// childURL returns a urlFunc appending identifiers to a collection URL.
// Plain string concatenation: the bridge hands out opaque ids and the wire
// format performs no escaping.
func childURL(base string) urlFunc {
	return func(id string) string {
		return base + "/" + id
	}
}

// facetURL composes a urlFunc with a fixed trailing segment, e.g. the
// state, config, or action facet of an item.
func facetURL(g urlFunc, facet string) urlFunc {
	return func(id string) string {
		return g(id) + "/" + facet
	}
}

// fetchFunc is a bodyless verb (GET, DELETE) bound to a caller.
type fetchFunc func(ctx context.Context, url string) (json.RawMessage, error)

// sendFunc is a body-carrying verb (PUT, POST) bound to a caller.
type sendFunc func(ctx context.Context, url string, body any) (json.RawMessage, error)

// itemFetchFunc and itemSendFunc are the parametrized counterparts, taking a
// resource identifier instead of a URL.
type (
	itemFetchFunc func(ctx context.Context, id string) (json.RawMessage, error)
	itemSendFunc  func(ctx context.Context, id string, body any) (json.RawMessage, error)
)

// boundFetch and boundSend are verbs with their URL fixed at bind time, for
// collection endpoints that take no identifier.
type (
	boundFetch func(ctx context.Context) (json.RawMessage, error)
	boundSend  func(ctx context.Context, body any) (json.RawMessage, error)
)

// bindFetch fixes the URL of a bodyless verb.
func bindFetch(f fetchFunc, url string) boundFetch {
	return func(ctx context.Context) (json.RawMessage, error) {
		return f(ctx, url)
	}
}

// bindSend fixes the URL of a body-carrying verb.
func bindSend(f sendFunc, url string) boundSend {
	return func(ctx context.Context, body any) (json.RawMessage, error) {
		return f(ctx, url, body)
	}
}

// paramFetch substitutes g(id) for the URL of a bodyless verb. The two
// explicit forms (paramFetch, paramSend) exist because the verbs differ in
// arity; remaining arguments pass through unchanged.
func paramFetch(f fetchFunc, g urlFunc) itemFetchFunc {
	return func(ctx context.Context, id string) (json.RawMessage, error) {
		return f(ctx, g(id))
	}
}

// paramSend substitutes g(id) for the URL of a body-carrying verb.
func paramSend(f sendFunc, g urlFunc) itemSendFunc {
	return func(ctx context.Context, id string, body any) (json.RawMessage, error) {
		return f(ctx, g(id), body)
	}
}
