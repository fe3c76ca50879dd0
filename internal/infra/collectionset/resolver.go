// Package collectionset resolves opaque collection-set identifiers into the
// concrete collection identifier lists they name. A collection set is an
// externally-managed grouping; this service consumes the resolution as a
// black-box lookup with no local mutation.
package collectionset

import "context"

// Resolver expands a set identifier into its member collection ids.
type Resolver interface {
	// Resolve returns the ordered member list of the given set. An empty
	// list is a valid result, not an error: the caller treats it as "no
	// constraint from this filter".
	Resolve(ctx context.Context, setID string) ([]string, error)
}

// Static is an in-memory Resolver backed by a fixed map.
// Used for local development wiring and tests.
type Static map[string][]string

// Resolve implements Resolver. Unknown set ids resolve to an empty list.
func (s Static) Resolve(_ context.Context, setID string) ([]string, error) {
	return s[setID], nil
}
