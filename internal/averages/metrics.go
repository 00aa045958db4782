package averages

import (
	"github.com/SiloGit/bcnotif/internal/shared/metrics"
)

// metricFeedFirstTrackedTotal counts feeds folded into the averages snapshot
// for the first time.
//
// The bucket_id label identifies the hour of day the feed was first seen,
// formatted "hour-XX" (00-23). A feed that later drops off the listing and
// reappears does not count again as long as its averages row survives.
var (
	metricFeedFirstTrackedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPoll,
			Name:      "feed_first_tracked_total",
		},
		[]string{"bucket_id"},
	)
)
