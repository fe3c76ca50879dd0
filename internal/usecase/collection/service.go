package collection

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/infra/collectionset"
	"nft-stats/internal/repository"
)

// ListInput represents the input parameters for a collection listing request.
// Inputs arrive already shape-validated from the transport boundary; empty
// strings mean "filter not supplied".
type ListInput struct {
	Community        string
	CollectionsSetID string
	Contract         string
	Name             string
	Slug             string

	// SortBy selects the sort dimension. Unknown values fall back to the
	// all-time volume default.
	SortBy string

	// IncludeTopBid attaches the best open buy order per collection,
	// joined in at query time.
	IncludeTopBid bool

	// Limit is the requested page size; non-positive means default.
	Limit int

	// Continuation is the opaque cursor of the previous page, if any.
	Continuation string
}

// ListResult is one page of collection projections plus the continuation
// cursor for the next page. Continuation is nil once the final page has been
// observed: any page shorter than the requested limit is the final page.
type ListResult struct {
	Collections  []Collection
	Continuation *string
}

// Service provides collection listing use cases. It composes the filter
// predicates, delegates the single page read to the repository and shapes
// the result. The service holds no mutable state; every call is an
// independent, read-only operation.
type Service struct {
	Repo  repository.CollectionRepository
	Sets  collectionset.Resolver
	Pages keyset.Config
}

// List returns one page of collections matching the given filters, ordered
// by the selected sort dimension (descending, nulls last).
//
// Failure modes: ErrInvalidRequest when no discriminating filter is supplied
// under the default sort; keyset.ErrInvalidCursor when the continuation
// token cannot be decoded; store and resolver failures propagate wrapped,
// with no local retry.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	sort := keyset.ParseSortDimension(in.SortBy)

	// Reject requests that would scan the whole table under the
	// non-selective default ordering. A non-default sort dimension is
	// selective enough to proceed on its own.
	if in.Community == "" && in.CollectionsSetID == "" && in.Contract == "" &&
		in.Name == "" && sort.IsDefault() {
		return nil, ErrInvalidRequest
	}

	var resume *decimal.Decimal
	if in.Continuation != "" {
		v, err := keyset.DecodeCursor(in.Continuation)
		if err != nil {
			return nil, err
		}
		resume = &v
	}

	filters, err := s.composeFilters(ctx, in)
	if err != nil {
		return nil, err
	}

	limit := s.Pages.Clamp(in.Limit)

	rows, err := s.Repo.List(ctx, repository.CollectionListQuery{
		Filters:       filters,
		Sort:          sort,
		Resume:        resume,
		IncludeTopBid: in.IncludeTopBid,
		Limit:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	result := &ListResult{Collections: make([]Collection, 0, len(rows))}
	for i := range rows {
		result.Collections = append(result.Collections, Project(rows[i]))
	}

	// A full page may have more rows behind it; seed the next cursor from
	// the last row's sort value. A short page is always the final page.
	if len(rows) == limit && len(rows) > 0 {
		result.Continuation = keyset.NextCursor(sort, rows[len(rows)-1].Collection)
	}
	return result, nil
}

// composeFilters folds the optional inputs into the predicate set. The
// collection-set filter is resolved externally first because its output
// becomes part of the main query's predicates; an empty resolution
// contributes no predicate.
func (s *Service) composeFilters(ctx context.Context, in ListInput) (repository.CollectionFilters, error) {
	var filters repository.CollectionFilters

	if in.Community != "" {
		filters.Community = &in.Community
	}
	if in.Contract != "" {
		filters.Contract = &in.Contract
	}
	if in.Name != "" {
		filters.Name = &in.Name
	}
	if in.Slug != "" {
		filters.Slug = &in.Slug
	}
	if in.CollectionsSetID != "" {
		ids, err := s.Sets.Resolve(ctx, in.CollectionsSetID)
		if err != nil {
			return filters, fmt.Errorf("resolve collection set: %w", err)
		}
		if len(ids) > 0 {
			filters.CollectionIDs = ids
		}
	}
	return filters, nil
}

// Get retrieves a single collection by its identifier.
// Returns ErrCollectionNotFound if the collection does not exist.
func (s *Service) Get(ctx context.Context, id string, includeTopBid bool) (*Collection, error) {
	if id == "" {
		return nil, ErrCollectionNotFound
	}

	row, err := s.Repo.Get(ctx, id, includeTopBid)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	if row == nil {
		return nil, ErrCollectionNotFound
	}
	projected := Project(*row)
	return &projected, nil
}
