package models

import "fmt"

// HoursPerDay is the number of average buckets kept per feed, one per hour
// of day.
const HoursPerDay = 24

// HourBucketID renders an hour of day as a stable bucket label, e.g. "hour-14".
func HourBucketID(hour int) string {
	return fmt.Sprintf("hour-%02d", hour)
}

// ListenerAvg tracks a feed's typical listener count for each hour of day.
// A bucket at zero means that hour has never been observed. The type has
// value semantics: updates return a new value and never alias shared state.
type ListenerAvg struct {
	Hours [HoursPerDay]float64 `json:"hours"`
}

// NewSeededListenerAvg returns averages with every bucket set to seed.
// Seeding a feed's first observation at its own listener count makes the
// first sighting read as exactly average rather than as a spike.
func NewSeededListenerAvg(seed float64) ListenerAvg {
	var avg ListenerAvg
	for i := range avg.Hours {
		avg.Hours[i] = seed
	}
	return avg
}

// At returns the average for the given hour of day (0-23).
func (a ListenerAvg) At(hour int) float64 {
	return a.Hours[hour]
}

// WithHour returns a copy with the given hour's bucket replaced.
func (a ListenerAvg) WithHour(hour int, value float64) ListenerAvg {
	a.Hours[hour] = value
	return a
}
