package listings

import (
	"github.com/SiloGit/bcnotif/internal/shared/metrics"
)

const (
	sourceTop   = "top"
	sourceState = "state"
)

// metricListingFetchesTotal counts fetch-and-scrape attempts per listing
// source. The error_code label is empty on success and carries the stable
// service error code otherwise.
//
// metricListingFetchDurationSeconds observes the wall time of the page
// download alone, not the scrape.
var (
	metricListingFetchesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubListing,
			Name:      "fetches_total",
		},
		[]string{"source", metrics.FieldErrorCode},
	)

	metricListingFetchDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubListing,
			Name:      "fetch_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"source"},
	)
)
