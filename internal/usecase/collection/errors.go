// Package collection provides the listing use case for aggregated NFT
// collection statistics: filter composition, keyset pagination and the
// projection of store rows into response records.
package collection

import "errors"

// Sentinel errors for collection use case operations.
var (
	// ErrInvalidRequest indicates that the request carries no discriminating
	// filter while sorting on the non-selective default dimension. Such a
	// request would be an unbounded full-table scan.
	ErrInvalidRequest = errors.New("at least one filter or a sort dimension is required")

	// ErrCollectionNotFound indicates that the requested collection was not found.
	ErrCollectionNotFound = errors.New("collection not found")
)
