package averages

import (
	"context"

	"github.com/SiloGit/bcnotif/internal/models"
	"github.com/SiloGit/bcnotif/internal/shared/loggers"
	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
)

//go:generate mockgen -source=tracker_service.go -destination=./mocks/tracker_service_mock.go -package=mocks
type TrackerService interface {
	// Track folds one cycle's observations into the averages snapshot and
	// returns the feeds annotated with their updated averages plus the next
	// snapshot. The input snapshot is left untouched; feeds seen for the
	// first time are seeded at their own listener count so the first
	// sighting reads as exactly average.
	Track(ctx context.Context, snapshot map[string]models.ListenerAvg, feeds []models.Feed, hour, smoothing int) ([]models.Feed, map[string]models.ListenerAvg, *svcerrors.ServiceError)
}

type trackerService struct {
	updater Updater
}

func NewTrackerService(updater Updater) TrackerService {
	return &trackerService{updater: updater}
}

func (s *trackerService) Track(ctx context.Context, snapshot map[string]models.ListenerAvg, feeds []models.Feed, hour, smoothing int) ([]models.Feed, map[string]models.ListenerAvg, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Int(loggers.FieldHour, hour).
		Int(loggers.FieldFeedCount, len(feeds)).
		Msg("folding observations into listener averages")

	next := make(map[string]models.ListenerAvg, len(snapshot)+len(feeds))
	for name, avg := range snapshot {
		next[name] = avg
	}

	annotated := make([]models.Feed, 0, len(feeds))
	for _, feed := range feeds {
		prev, seen := next[feed.Name]
		if !seen {
			prev = models.NewSeededListenerAvg(float64(feed.Listeners))
			metricFeedFirstTrackedTotal.WithLabelValues(models.HourBucketID(hour)).Inc()
		}

		updated, err := s.updater.Apply(prev, hour, smoothing, feed.Listeners)
		if err != nil {
			return nil, nil, errInvalidObservation(err)
		}

		next[feed.Name] = updated
		feed.Avg = updated
		annotated = append(annotated, feed)
	}

	return annotated, next, nil
}
