package pollers

import (
	"github.com/SiloGit/bcnotif/internal/shared/metrics"
)

var (
	metricPollCyclesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "cycles_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricPollCycleDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "cycle_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)

	metricConfigReloadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "config_reloads_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "reports_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSnapshotSavesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "snapshot_saves_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricTrackedFeeds is the number of feeds with accumulated averages,
	// i.e. the size of the persisted snapshot.
	metricTrackedFeeds = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "tracked_feeds",
		},
		[]string{},
	)

	// metricReportedFeeds is the number of feeds in the last cycle's report.
	metricReportedFeeds = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "reported_feeds",
		},
		[]string{},
	)
)
