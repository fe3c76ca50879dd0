package collection

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/domain/entity"
	"nft-stats/internal/handler/http/requestid"
	"nft-stats/internal/handler/http/respond"
	"nft-stats/internal/observability/logging"
	"nft-stats/internal/observability/metrics"
	collUC "nft-stats/internal/usecase/collection"
)

type ListHandler struct {
	Svc    Service
	Logger *slog.Logger
}

// ServeHTTP serves one page of collections. All filters are optional query
// parameters, but at least one discriminating filter is required under the
// default sort; without one a 400 is returned before any storage work.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	in, err := parseListQuery(r)
	if err != nil {
		logger.Warn("invalid listing parameters",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sortLabel := keyset.ParseSortDimension(in.SortBy).String()

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, collUC.ErrInvalidRequest):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, keyset.ErrInvalidCursor):
			metrics.RecordInvalidCursor()
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			logger.Error("failed to list collections",
				"error", err.Error(),
				"sort", sortLabel,
				"request_id", reqID)
			metrics.RecordListingQuery(sortLabel, time.Since(startTime), 0, false)
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	duration := time.Since(startTime)
	metrics.RecordListingQuery(sortLabel, duration, len(result.Collections), true)

	logger.Info("collections listed",
		"sort", sortLabel,
		"returned_count", len(result.Collections),
		"has_continuation", result.Continuation != nil,
		"duration_ms", duration.Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, ListResponse{
		Collections:  result.Collections,
		Continuation: result.Continuation,
	})
}

// parseListQuery maps query parameters onto the use case input. Empty
// parameters mean "not supplied"; shape errors surface here so the use case
// only sees well-formed input.
func parseListQuery(r *http.Request) (collUC.ListInput, error) {
	q := r.URL.Query()

	in := collUC.ListInput{
		Community:        q.Get("community"),
		CollectionsSetID: q.Get("collectionsSetId"),
		Contract:         q.Get("contract"),
		Name:             q.Get("name"),
		Slug:             q.Get("slug"),
		SortBy:           q.Get("sortBy"),
		Continuation:     q.Get("continuation"),
	}

	if in.Contract != "" {
		canonical, err := entity.NormalizeContractAddress(in.Contract)
		if err != nil {
			return in, err
		}
		in.Contract = canonical
	}

	if raw := q.Get("includeTopBid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return in, errors.New("includeTopBid must be a boolean")
		}
		in.IncludeTopBid = v
	}

	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return in, errors.New("limit must be a positive integer")
		}
		in.Limit = v
	}

	return in, nil
}
