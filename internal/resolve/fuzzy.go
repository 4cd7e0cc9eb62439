// Package resolve provides fuzzy name-to-id matching for bridge resources.
//
// The bridge addresses lights, groups, and scenes by opaque ids; people know
// them by name. Matching is case-insensitive, prefers exact matches, and
// reports ambiguity instead of guessing.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Named is any bridge resource with an id and display name.
type Named struct {
	ID   string
	Name string
}

// Match is a fuzzy match result with score.
type Match struct {
	ID    string
	Name  string
	Score int
}

var (
	ErrEmptyQuery = errors.New("empty search query")
	ErrEmptyItems = errors.New("no items to match against")
)

// AmbiguousError indicates multiple candidates matched equally well.
type AmbiguousError struct {
	Query   string
	Matches []Match
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "ambiguous match for %q", e.Query)
	if len(e.Matches) > 0 {
		b.WriteString(", candidates:")
		for _, m := range e.Matches {
			_, _ = fmt.Fprintf(&b, "\n  %s: %s", m.ID, m.Name)
		}
	}
	return b.String()
}

type namedSource []Named

func (s namedSource) String(i int) string { return strings.ToLower(s[i].Name) }
func (s namedSource) Len() int            { return len(s) }

// Name finds the best matching item by name and returns its id.
//
// Exact case-insensitive matches win outright. Otherwise the best fuzzy
// match is taken; a tie between the top two results is an *AmbiguousError.
func Name(query string, items []Named) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	if len(items) == 0 {
		return "", ErrEmptyItems
	}

	for _, item := range items {
		if strings.EqualFold(item.Name, query) {
			return item.ID, nil
		}
	}

	results := fuzzy.FindFrom(strings.ToLower(query), namedSource(items))
	if len(results) == 0 {
		return "", fmt.Errorf("no match found for %q", query)
	}
	if len(results) > 1 && results[0].Score == results[1].Score {
		matches := make([]Match, 0, len(results))
		for _, r := range results {
			if r.Score != results[0].Score {
				break
			}
			matches = append(matches, Match{
				ID:    items[r.Index].ID,
				Name:  items[r.Index].Name,
				Score: r.Score,
			})
		}
		return "", &AmbiguousError{Query: query, Matches: matches}
	}
	return items[results[0].Index].ID, nil
}
