// Package collection provides HTTP handlers for collection-related endpoints.
// It includes the filtered, sorted, keyset-paginated listing endpoint and
// single-collection retrieval.
package collection

import (
	"context"

	collUC "nft-stats/internal/usecase/collection"
)

// ListResponse is the JSON envelope for the listing endpoint. Continuation
// is null once the final page has been served.
type ListResponse struct {
	Collections  []collUC.Collection `json:"collections"`
	Continuation *string             `json:"continuation"`
}

// Service is the use case surface the handlers depend on.
type Service interface {
	List(ctx context.Context, in collUC.ListInput) (*collUC.ListResult, error)
	Get(ctx context.Context, id string, includeTopBid bool) (*collUC.Collection, error)
}
