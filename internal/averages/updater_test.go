package averages

import (
	"testing"

	"github.com/SiloGit/bcnotif/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyUpdater_Apply_BlendsTowardObservation(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	prev := models.NewSeededListenerAvg(100)

	updated, err := updater.Apply(prev, 14, 5, 200)
	require.NoError(t, err)

	// 100 + (200-100)/5 = 120
	assert.Equal(t, 120.0, updated.At(14))
}

func TestHourlyUpdater_Apply_OnlyTouchesGivenHour(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	prev := models.NewSeededListenerAvg(50)

	updated, err := updater.Apply(prev, 14, 5, 200)
	require.NoError(t, err)

	for hour := 0; hour < models.HoursPerDay; hour++ {
		if hour == 14 {
			continue
		}
		assert.Equal(t, 50.0, updated.At(hour), "hour %d must be exactly unchanged", hour)
	}

	// The input value is untouched.
	assert.Equal(t, 50.0, prev.At(14))
}

func TestHourlyUpdater_Apply_ConvergesWithoutOvershoot(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	avg := models.NewSeededListenerAvg(100)

	previous := avg.At(8)
	for i := 0; i < 50; i++ {
		var err error
		avg, err = updater.Apply(avg, 8, 5, 200)
		require.NoError(t, err)

		current := avg.At(8)
		assert.Greater(t, current, previous, "iteration %d must move toward the observation", i)
		assert.LessOrEqual(t, current, 200.0, "iteration %d must never overshoot", i)
		previous = current
	}

	// After many repeats the bucket sits close to the steady observation.
	assert.InDelta(t, 200.0, avg.At(8), 0.01)
}

func TestHourlyUpdater_Apply_DecaysWhenBelowAverage(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	prev := models.NewSeededListenerAvg(200)

	updated, err := updater.Apply(prev, 3, 5, 100)
	require.NoError(t, err)

	// 200 + (100-200)/5 = 180
	assert.Equal(t, 180.0, updated.At(3))
}

func TestHourlyUpdater_Apply_SmoothingOneTracksExactly(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	prev := models.NewSeededListenerAvg(57)

	updated, err := updater.Apply(prev, 0, 1, 300)
	require.NoError(t, err)

	assert.Equal(t, 300.0, updated.At(0))
}

func TestHourlyUpdater_Apply_ZeroObservationPullsDown(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	prev := models.NewSeededListenerAvg(100)

	updated, err := updater.Apply(prev, 22, 5, 0)
	require.NoError(t, err)

	assert.Equal(t, 80.0, updated.At(22))
}

func TestHourlyUpdater_Apply_RejectsBadArguments(t *testing.T) {
	t.Parallel()

	updater := NewHourlyUpdater()
	prev := models.NewSeededListenerAvg(10)

	tests := []struct {
		name      string
		hour      int
		smoothing int
		observed  int
	}{
		{name: "negative hour", hour: -1, smoothing: 5, observed: 10},
		{name: "hour past end of day", hour: 24, smoothing: 5, observed: 10},
		{name: "zero smoothing", hour: 12, smoothing: 0, observed: 10},
		{name: "negative smoothing", hour: 12, smoothing: -3, observed: 10},
		{name: "negative observation", hour: 12, smoothing: 5, observed: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := updater.Apply(prev, tt.hour, tt.smoothing, tt.observed)
			assert.Error(t, err)
			assert.Equal(t, prev, got, "failed apply must hand back the input unchanged")
		})
	}
}
