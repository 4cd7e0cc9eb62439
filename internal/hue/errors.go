package hue

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BridgeError is an application-level error object from the bridge. The
// bridge embeds these in ordinarily successful (HTTP 200) responses as
// [{"error": {"type": ..., "address": ..., "description": ...}}, ...].
type BridgeError struct {
	Type        int    `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("bridge error %d at %s: %s", e.Type, e.Address, e.Description)
}

// Well-known bridge error types.
const (
	ErrTypeUnauthorized      = 1
	ErrTypeResourceMissing   = 3
	ErrTypeLinkButtonPressed = 101
)

// CheckResponse scans a parsed bridge document for embedded error entries.
// The request layer never calls this on resource operations; documents pass
// through uninspected and callers opt in per call site. Returns nil when the
// document is not an error array; joins all entries otherwise.
func CheckResponse(doc json.RawMessage) error {
	var results []struct {
		Error *BridgeError `json:"error"`
	}
	if err := json.Unmarshal(doc, &results); err != nil {
		return nil
	}
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
		}
	}
	return errors.Join(errs...)
}
