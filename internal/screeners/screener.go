package screeners

import (
	"time"

	"github.com/SiloGit/bcnotif/internal/models"
	"github.com/SiloGit/bcnotif/internal/shared/configs"

	"github.com/samber/lo"
)

//go:generate mockgen -source=screener.go -destination=./mocks/screener_mock.go -package=mocks
type FeedScreener interface {
	// Screen returns the feeds whose listener count spikes above their
	// hourly average under the thresholds in cfg. Feeds must already carry
	// this cycle's averages.
	Screen(cfg *configs.Config, now time.Time, feeds []models.Feed) []models.Feed
}

type spikeScreener struct{}

func NewSpikeScreener() FeedScreener {
	return &spikeScreener{}
}

func (s *spikeScreener) Screen(cfg *configs.Config, now time.Time, feeds []models.Feed) []models.Feed {
	hour := now.Hour()
	day := now.Weekday()

	return lo.Filter(feeds, func(feed models.Feed, _ int) bool {
		if feed.Listeners < cfg.Spike.MinimumListeners {
			return false
		}

		avg := feed.Avg.At(hour)
		if avg == 0 {
			// Hour never observed: any listener at all counts as a spike.
			return feed.Listeners > 0
		}

		// Strictly above the threshold; sitting exactly on it is not a spike.
		multiplier := 1 + cfg.JumpFor(feed, day)/100
		return float64(feed.Listeners) > avg*multiplier
	})
}
