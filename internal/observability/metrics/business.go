package metrics

import "time"

// RecordListingQuery records one collection listing query: the sort
// dimension it ran under, whether it succeeded, how long the store took and
// how many rows came back.
func RecordListingQuery(sort string, duration time.Duration, pageSize int, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ListingQueriesTotal.WithLabelValues(sort, status).Inc()
	if success {
		ListingQueryDuration.WithLabelValues(sort).Observe(duration.Seconds())
		ListingPageSize.Observe(float64(pageSize))
	}
}

// RecordInvalidCursor records a continuation token that failed to decode.
func RecordInvalidCursor() {
	InvalidCursorsTotal.Inc()
}

// RecordSetResolution records the outcome of a collection-set resolver lookup.
func RecordSetResolution(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	SetResolutionsTotal.WithLabelValues(status).Inc()
}
