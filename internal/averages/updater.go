package averages

import (
	"fmt"

	"github.com/SiloGit/bcnotif/internal/models"
)

//go:generate mockgen -source=updater.go -destination=./mocks/updater_mock.go -package=mocks
type Updater interface {
	// Apply folds one observation into a feed's averages, touching only the
	// bucket for the given hour. The input value is never modified.
	Apply(prev models.ListenerAvg, hour, smoothing, observed int) (models.ListenerAvg, error)
}

type hourlyUpdater struct{}

func NewHourlyUpdater() Updater {
	return &hourlyUpdater{}
}

// Apply blends the observation into the hour's bucket with
// new = prev + (observed - prev) / smoothing, so each bucket converges on
// the typical listener count for that hour without a raw-sample history.
func (u *hourlyUpdater) Apply(prev models.ListenerAvg, hour, smoothing, observed int) (models.ListenerAvg, error) {
	if hour < 0 || hour >= models.HoursPerDay {
		return prev, fmt.Errorf("hour out of range: %d", hour)
	}
	if smoothing < 1 {
		return prev, fmt.Errorf("smoothing must be at least 1: %d", smoothing)
	}
	if observed < 0 {
		return prev, fmt.Errorf("observed listeners cannot be negative: %d", observed)
	}

	current := prev.At(hour)
	blended := current + (float64(observed)-current)/float64(smoothing)
	return prev.WithHour(hour, blended), nil
}
