package pollers

import (
	"context"
	"testing"
	"time"

	averagesmocks "github.com/SiloGit/bcnotif/internal/averages/mocks"
	listingsmocks "github.com/SiloGit/bcnotif/internal/listings/mocks"
	"github.com/SiloGit/bcnotif/internal/models"
	reportersmocks "github.com/SiloGit/bcnotif/internal/reporters/mocks"
	screenersmocks "github.com/SiloGit/bcnotif/internal/screeners/mocks"
	"github.com/SiloGit/bcnotif/internal/shared/configs"
	configsmocks "github.com/SiloGit/bcnotif/internal/shared/configs/mocks"
	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
	storesmocks "github.com/SiloGit/bcnotif/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pollerMocks struct {
	source   *configsmocks.MockSource
	lister   *listingsmocks.MockLister
	tracker  *averagesmocks.MockTrackerService
	screener *screenersmocks.MockFeedScreener
	ranker   *screenersmocks.MockFeedRanker
	store    *storesmocks.MockAverageStore
	reporter *reportersmocks.MockReporter
}

func newPollerWithMocks(t *testing.T, cfg *configs.Config, initial map[string]models.ListenerAvg) (*poller, pollerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := pollerMocks{
		source:   configsmocks.NewMockSource(ctrl),
		lister:   listingsmocks.NewMockLister(ctrl),
		tracker:  averagesmocks.NewMockTrackerService(ctrl),
		screener: screenersmocks.NewMockFeedScreener(ctrl),
		ranker:   screenersmocks.NewMockFeedRanker(ctrl),
		store:    storesmocks.NewMockAverageStore(ctrl),
		reporter: reportersmocks.NewMockReporter(ctrl),
	}

	p := NewPoller(
		m.source, m.lister, m.tracker, m.screener, m.ranker, m.store, m.reporter,
		cfg, initial, zerolog.Nop(),
	).(*poller)
	return p, m
}

func pollerTestConfig() *configs.Config {
	return &configs.Config{
		Poll:     configs.PollConfig{UpdateTime: 6},
		Averages: configs.AveragesConfig{Smoothing: 5},
		Report:   configs.ReportConfig{MaxFeeds: 10, SortBy: "listeners", SortOrder: "descending"},
	}
}

func TestNewPoller(t *testing.T) {
	t.Parallel()

	p, _ := newPollerWithMocks(t, pollerTestConfig(), nil)

	assert.NotNil(t, p)
	assert.Nil(t, p.Last())
	assert.NotNil(t, p.averages, "nil initial averages become an empty map")
}

func TestPoller_RunCycle_HappyPath(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	initial := map[string]models.ListenerAvg{"KCMO Dispatch": models.NewSeededListenerAvg(40)}
	p, m := newPollerWithMocks(t, cfg, initial)

	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)
	reloaded := pollerTestConfig()

	feeds := []models.Feed{{ID: 1234, Name: "Dallas City Fire", Listeners: 1523}}
	annotated := []models.Feed{{ID: 1234, Name: "Dallas City Fire", Listeners: 1523, Avg: models.NewSeededListenerAvg(1100)}}
	next := map[string]models.ListenerAvg{
		"KCMO Dispatch":    models.NewSeededListenerAvg(40),
		"Dallas City Fire": models.NewSeededListenerAvg(1100),
	}

	m.source.EXPECT().Snapshot().Return(reloaded, nil)
	m.lister.EXPECT().List(gomock.Any(), reloaded).Return(feeds, nil)
	m.tracker.EXPECT().Track(gomock.Any(), initial, feeds, 14, 5).Return(annotated, next, nil)
	m.screener.EXPECT().Screen(reloaded, now, annotated).Return(annotated)
	m.ranker.EXPECT().Rank(annotated, models.SortByListeners, models.OrderDescending, 14).Return(annotated)

	var reported *models.CycleResult
	m.reporter.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, result *models.CycleResult) error {
			reported = result
			return nil
		})
	m.store.EXPECT().Save(gomock.Any(), next).Return(nil)

	p.runCycle(context.Background(), now)

	require.NotNil(t, reported)
	assert.NotEmpty(t, reported.CycleID)
	assert.Equal(t, now, reported.StartedAt)
	assert.Equal(t, 14, reported.Hour)
	assert.Equal(t, 1, reported.FetchedFeeds)
	assert.Equal(t, 2, reported.TrackedFeeds)
	assert.Equal(t, annotated, reported.Feeds)

	assert.Same(t, reported, p.Last())
	assert.Equal(t, next, p.averages)
	assert.Same(t, reloaded, p.cfg, "cycle picks up the reloaded config")
}

func TestPoller_RunCycle_ConfigReloadError_KeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	p, m := newPollerWithMocks(t, cfg, nil)

	now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)

	m.source.EXPECT().Snapshot().Return(nil, assert.AnError)
	// The previous config keeps driving the cycle.
	m.lister.EXPECT().List(gomock.Any(), cfg).Return([]models.Feed{}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any(), 3, 5).
		Return([]models.Feed{}, map[string]models.ListenerAvg{}, nil)
	m.screener.EXPECT().Screen(cfg, now, gomock.Any()).Return([]models.Feed{})
	m.ranker.EXPECT().Rank(gomock.Any(), models.SortByListeners, models.OrderDescending, 3).Return([]models.Feed{})
	m.reporter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	p.runCycle(context.Background(), now)

	assert.Same(t, cfg, p.cfg)
	assert.NotNil(t, p.Last())
}

func TestPoller_RunCycle_ListError_SkipsCycle(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	initial := map[string]models.ListenerAvg{"KCMO Dispatch": models.NewSeededListenerAvg(40)}
	p, m := newPollerWithMocks(t, cfg, initial)

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).
		Return(nil, svcerrors.NewUnavailableError("LST_1000", "listing fetch failed", assert.AnError))

	// No tracking, screening, reporting, or saving on a failed fetch.
	p.runCycle(context.Background(), time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC))

	assert.Nil(t, p.Last())
	assert.Equal(t, initial, p.averages, "averages untouched on a skipped cycle")
}

func TestPoller_RunCycle_TrackError_SkipsRestOfCycle(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	p, m := newPollerWithMocks(t, cfg, nil)

	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)
	feeds := []models.Feed{{ID: 1234, Name: "Dallas City Fire", Listeners: 1523}}

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).Return(feeds, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), feeds, 14, 5).
		Return(nil, nil, svcerrors.NewInvalidArgumentError("AVG_1000", "invalid observation", assert.AnError))

	p.runCycle(context.Background(), now)

	assert.Nil(t, p.Last())
	assert.Empty(t, p.averages)
}

func TestPoller_RunCycle_ReportError_StillSavesSnapshot(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	p, m := newPollerWithMocks(t, cfg, nil)

	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)
	next := map[string]models.ListenerAvg{"Dallas City Fire": models.NewSeededListenerAvg(1100)}

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).Return([]models.Feed{}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any(), 14, 5).
		Return([]models.Feed{}, next, nil)
	m.screener.EXPECT().Screen(cfg, now, gomock.Any()).Return([]models.Feed{})
	m.ranker.EXPECT().Rank(gomock.Any(), models.SortByListeners, models.OrderDescending, 14).Return([]models.Feed{})
	m.reporter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(assert.AnError)
	m.store.EXPECT().Save(gomock.Any(), next).Return(nil)

	p.runCycle(context.Background(), now)

	assert.NotNil(t, p.Last(), "a broken report sink does not lose the cycle result")
}

func TestPoller_RunCycle_SaveError_KeepsAveragesInMemory(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	p, m := newPollerWithMocks(t, cfg, nil)

	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)
	next := map[string]models.ListenerAvg{"Dallas City Fire": models.NewSeededListenerAvg(1100)}

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).Return([]models.Feed{}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any(), 14, 5).
		Return([]models.Feed{}, next, nil)
	m.screener.EXPECT().Screen(cfg, now, gomock.Any()).Return([]models.Feed{})
	m.ranker.EXPECT().Rank(gomock.Any(), models.SortByListeners, models.OrderDescending, 14).Return([]models.Feed{})
	m.reporter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Save(gomock.Any(), next).Return(assert.AnError)

	p.runCycle(context.Background(), now)

	assert.Equal(t, next, p.averages, "a failed save does not roll back in-memory averages")
	assert.NotNil(t, p.Last())
}

func TestPoller_RunCycle_TruncatesToMaxFeeds(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	cfg.Report.MaxFeeds = 2
	p, m := newPollerWithMocks(t, cfg, nil)

	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)
	ranked := []models.Feed{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
		{ID: 3, Name: "Third"},
	}

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).Return([]models.Feed{}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any(), 14, 5).
		Return([]models.Feed{}, map[string]models.ListenerAvg{}, nil)
	m.screener.EXPECT().Screen(cfg, now, gomock.Any()).Return(ranked)
	m.ranker.EXPECT().Rank(ranked, models.SortByListeners, models.OrderDescending, 14).Return(ranked)

	var reported *models.CycleResult
	m.reporter.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, result *models.CycleResult) error {
			reported = result
			return nil
		})
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	p.runCycle(context.Background(), now)

	require.NotNil(t, reported)
	assert.Equal(t, ranked[:2], reported.Feeds)
}

func TestPoller_RunCycle_PanicRecovered(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	p, m := newPollerWithMocks(t, cfg, nil)

	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).Return([]models.Feed{}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any(), 14, 5).
		Return([]models.Feed{}, map[string]models.ListenerAvg{}, nil)
	m.screener.EXPECT().
		Screen(cfg, now, gomock.Any()).
		DoAndReturn(func(cfg *configs.Config, now time.Time, feeds []models.Feed) []models.Feed {
			panic("boom")
		})

	assert.NotPanics(t, func() {
		p.runCycle(context.Background(), now)
	})
	assert.Nil(t, p.Last())
}

func TestPoller_StartStop(t *testing.T) {
	t.Parallel()

	cfg := pollerTestConfig()
	p, m := newPollerWithMocks(t, cfg, nil)

	m.source.EXPECT().Snapshot().Return(cfg, nil)
	m.lister.EXPECT().List(gomock.Any(), cfg).Return([]models.Feed{}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Feed{}, map[string]models.ListenerAvg{}, nil)
	m.screener.EXPECT().Screen(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Feed{})
	m.ranker.EXPECT().Rank(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Feed{})
	m.reporter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	// The first cycle fires immediately; the six-minute timer keeps a second
	// one from running before Stop.
	assert.Eventually(t, func() bool {
		return p.Last() != nil
	}, time.Second, 10*time.Millisecond)

	p.Stop()
	p.Stop() // idempotent
}
