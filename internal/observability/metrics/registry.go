// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Listing metrics track the collection listing pipeline
var (
	// ListingQueriesTotal counts listing queries by sort dimension and outcome
	ListingQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_queries_total",
			Help: "Total number of collection listing queries",
		},
		[]string{"sort", "status"},
	)

	// ListingQueryDuration measures the store query duration in seconds
	ListingQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_query_duration_seconds",
			Help:    "Collection listing query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sort"},
	)

	// ListingPageSize observes the number of rows returned per page
	ListingPageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "listing_page_size",
			Help:    "Number of collections returned per page",
			Buckets: []float64{1, 5, 10, 20, 50, 100},
		},
	)

	// InvalidCursorsTotal counts continuation tokens that failed to decode
	InvalidCursorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_invalid_cursors_total",
			Help: "Total number of malformed continuation tokens received",
		},
	)

	// SetResolutionsTotal counts collection-set resolver lookups by outcome
	SetResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_set_resolutions_total",
			Help: "Total number of collection-set resolver lookups",
		},
		[]string{"status"},
	)
)
