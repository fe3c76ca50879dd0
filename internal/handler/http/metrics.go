package http

import (
	"net/http"
	"strconv"
	"time"

	"nft-stats/internal/handler/http/pathutil"
	"nft-stats/internal/handler/http/responsewriter"
	"nft-stats/internal/observability/metrics"
	"nft-stats/internal/observability/slo"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records HTTP request metrics: request counts, durations,
// and active connections. Paths are normalized before being used as labels to
// prevent cardinality explosion from ID-carrying routes.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)
		elapsed := time.Since(start)

		status := strconv.Itoa(rw.StatusCode())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(elapsed.Seconds())
		slo.RecordRequest(rw.StatusCode(), elapsed)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
