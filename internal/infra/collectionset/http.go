package collectionset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"nft-stats/internal/observability/metrics"
	"nft-stats/internal/resilience/circuitbreaker"
)

// HTTPConfig contains configuration for the HTTP-backed set resolver.
type HTTPConfig struct {
	// BaseURL is the root of the collection-set service,
	// e.g. "http://sets.internal:8080".
	BaseURL string

	// Timeout is the HTTP request timeout for resolver calls.
	Timeout time.Duration
}

// HTTPResolver resolves collection sets against an external HTTP service.
// Calls run through a circuit breaker so a failing resolver degrades fast
// instead of stalling every set-filtered listing request.
type HTTPResolver struct {
	config     HTTPConfig
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewHTTPResolver creates a new HTTPResolver with the specified configuration.
func NewHTTPResolver(config HTTPConfig) *HTTPResolver {
	return &HTTPResolver{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		breaker: circuitbreaker.New(circuitbreaker.SetResolverConfig()),
	}
}

// Breaker exposes the resolver's circuit breaker for health reporting.
func (r *HTTPResolver) Breaker() *circuitbreaker.CircuitBreaker {
	return r.breaker
}

// setResponse is the JSON contract of the collection-set service.
type setResponse struct {
	Collections []string `json:"collections"`
}

// Resolve implements Resolver. An unknown set id (404) resolves to an empty
// list, mirroring the permissive empty-set contract; any other failure is
// returned to the caller verbatim.
func (r *HTTPResolver) Resolve(ctx context.Context, setID string) ([]string, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.fetch(ctx, setID)
	})
	if err != nil {
		metrics.RecordSetResolution(false)
		return nil, fmt.Errorf("resolve collection set %q: %w", setID, err)
	}
	metrics.RecordSetResolution(true)
	return result.([]string), nil
}

func (r *HTTPResolver) fetch(ctx context.Context, setID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/collections-sets/%s", r.config.BaseURL, url.PathEscape(setID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		slog.Debug("collection set not found, resolving to empty",
			slog.String("set_id", setID))
		return []string{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("collection set service returned %d: %s", resp.StatusCode, string(body))
	}

	var payload setResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode collection set response: %w", err)
	}
	if payload.Collections == nil {
		return []string{}, nil
	}
	return payload.Collections, nil
}
