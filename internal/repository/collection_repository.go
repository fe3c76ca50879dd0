package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/domain/entity"
)

// CollectionFilters contains optional filters for collection listing.
// Filters are independent and commutative: folding them into the predicate
// set in any order yields the same result.
type CollectionFilters struct {
	Community     *string  // Optional: exact match (case-insensitive) on the community tag
	CollectionIDs []string // Optional: resolved collection-set membership; empty contributes no predicate
	Contract      *string  // Optional: exact match on the canonical contract address
	Name          *string  // Optional: case-insensitive substring match on the display name
	Slug          *string  // Optional: exact match (case-insensitive) on the slug
}

// Empty reports whether no filter is set.
func (f CollectionFilters) Empty() bool {
	return f.Community == nil && len(f.CollectionIDs) == 0 &&
		f.Contract == nil && f.Name == nil && f.Slug == nil
}

// CollectionListQuery describes one page read: the predicate set, the sort
// dimension, the optional keyset resume value and the page size.
type CollectionListQuery struct {
	Filters CollectionFilters
	Sort    keyset.SortDimension
	// Resume, when set, appends "sort column < Resume" so the page starts
	// strictly after the previous page's last row.
	Resume        *decimal.Decimal
	IncludeTopBid bool
	Limit         int
}

// CollectionRow couples a collection with the per-row extras fetched by the
// same query: up to four sampled token images for the image fallback, and
// the top bid when requested.
type CollectionRow struct {
	Collection   *entity.Collection
	SampleImages []string
	TopBid       *entity.TopBid
}

type CollectionRepository interface {
	// List executes one page read and returns at most q.Limit rows in the
	// order dictated by q.Sort (descending, nulls last).
	List(ctx context.Context, q CollectionListQuery) ([]CollectionRow, error)
	// Get retrieves a single collection by its identifier.
	// Returns (nil, nil) if the collection does not exist.
	Get(ctx context.Context, id string, includeTopBid bool) (*CollectionRow, error)
}
