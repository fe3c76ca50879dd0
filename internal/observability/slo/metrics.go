package slo

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service level objectives for the listing API.
const (
	// AvailabilityTarget is the target ratio of non-5xx responses (99.9%).
	AvailabilityTarget = 0.999

	// LatencyTarget is the per-request latency budget in seconds (500ms).
	LatencyTarget = 0.500

	// ErrorRateTarget is the maximum acceptable 5xx ratio (0.1%).
	ErrorRateTarget = 0.001
)

var (
	availability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Ratio of non-5xx responses since process start (0-1), target: 0.999",
		},
	)

	errorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Ratio of 5xx responses since process start (0-1), target: 0.001",
		},
	)

	latencyBreaches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slo_latency_breaches_total",
			Help: "Requests that exceeded the 500ms latency budget",
		},
	)
)

// tracker accumulates request outcomes and keeps the SLO gauges current.
type tracker struct {
	mu     sync.Mutex
	total  uint64
	errors uint64
}

var defaultTracker tracker

// RecordRequest folds one completed request into the SLO gauges.
// A response with status >= 500 counts against availability; a request
// slower than LatencyTarget counts as a latency breach.
func RecordRequest(status int, duration time.Duration) {
	defaultTracker.record(status, duration)
}

func (t *tracker) record(status int, duration time.Duration) {
	if duration.Seconds() > LatencyTarget {
		latencyBreaches.Inc()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	if status >= 500 {
		t.errors++
	}

	ok := float64(t.total-t.errors) / float64(t.total)
	availability.Set(ok)
	errorRate.Set(float64(t.errors) / float64(t.total))
}

func (t *tracker) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = 0
	t.errors = 0
}
