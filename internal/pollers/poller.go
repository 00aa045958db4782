package pollers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/SiloGit/bcnotif/internal/averages"
	"github.com/SiloGit/bcnotif/internal/listings"
	"github.com/SiloGit/bcnotif/internal/models"
	"github.com/SiloGit/bcnotif/internal/reporters"
	"github.com/SiloGit/bcnotif/internal/screeners"
	"github.com/SiloGit/bcnotif/internal/shared/configs"
	"github.com/SiloGit/bcnotif/internal/shared/loggers"
	"github.com/SiloGit/bcnotif/internal/shared/metrics"
	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
	"github.com/SiloGit/bcnotif/internal/shared/ulid"
	"github.com/SiloGit/bcnotif/internal/stores"
)

//go:generate mockgen -source=poller.go -destination=./mocks/poller_mock.go -package=mocks
type Poller interface {
	// Start runs the polling loop in a background goroutine. The first cycle
	// fires immediately; later cycles honor the configured update time.
	Start(ctx context.Context)
	// Stop waits for the loop to exit (best called during app shutdown).
	Stop()
	// Last returns the most recent completed cycle, or nil before the first
	// one finishes.
	Last() *models.CycleResult
}

type poller struct {
	configSource configs.Source
	lister       listings.Lister
	tracker      averages.TrackerService
	screener     screeners.FeedScreener
	ranker       screeners.FeedRanker
	store        stores.AverageStore
	reporter     reporters.Reporter

	// cfg and averages are owned by the run goroutine; only last is shared.
	cfg      *configs.Config
	averages map[string]models.ListenerAvg

	mu   sync.RWMutex
	last *models.CycleResult

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewPoller(
	configSource configs.Source,
	lister listings.Lister,
	tracker averages.TrackerService,
	screener screeners.FeedScreener,
	ranker screeners.FeedRanker,
	store stores.AverageStore,
	reporter reporters.Reporter,
	cfg *configs.Config,
	initialAverages map[string]models.ListenerAvg,
	logger loggers.Logger,
) Poller {
	if initialAverages == nil {
		initialAverages = map[string]models.ListenerAvg{}
	}
	return &poller{
		configSource: configSource,
		lister:       lister,
		tracker:      tracker,
		screener:     screener,
		ranker:       ranker,
		store:        store,
		reporter:     reporter,
		cfg:          cfg,
		averages:     initialAverages,
		stopCh:       make(chan struct{}),
		logger:       logger,
	}
}

func (p *poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.run(ctx)
	}()
}

func (p *poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *poller) Last() *models.CycleResult {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

func (p *poller) run(ctx context.Context) {
	for {
		p.runCycle(ctx, time.Now())

		// Interval is read after the cycle so a config change applies to the
		// very next sleep.
		timer := time.NewTimer(p.cfg.Poll.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-p.stopCh:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// runCycle executes one fetch-track-screen-report pass. It never lets a
// failure escape: errors are logged and counted, and the next cycle runs on
// schedule.
func (p *poller) runCycle(ctx context.Context, now time.Time) {
	start := time.Now()
	cycleID := ulid.NewULID()
	ctx = p.logger.With().
		Str(loggers.FieldCycleID, cycleID).
		Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("poll cycle panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricPollCyclesTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	p.reloadConfig(ctx)

	svcErr := p.cycle(ctx, cycleID, p.cfg, now)
	metricPollCycleDurationSeconds.WithLabelValues().Observe(time.Since(start).Seconds())
	if svcErr != nil {
		logger.Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("poll cycle failed")
		metricPollCyclesTotal.WithLabelValues(svcErr.Code).Inc()
		return
	}
	metricPollCyclesTotal.WithLabelValues(metrics.ValueNoError).Inc()
}

// reloadConfig picks up config file edits between cycles. A failed reload
// keeps the previous snapshot so a half-edited file cannot stop the loop.
func (p *poller) reloadConfig(ctx context.Context) {
	cfg, err := p.configSource.Snapshot()
	if err != nil {
		svcErr := errConfigReloadFailed(err)
		loggers.Ctx(ctx).Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("config reload failed, keeping previous snapshot")
		metricConfigReloadsTotal.WithLabelValues(svcErr.Code).Inc()
		return
	}
	metricConfigReloadsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	p.cfg = cfg
}

func (p *poller) cycle(ctx context.Context, cycleID string, cfg *configs.Config, now time.Time) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	hour := now.Hour()

	feeds, err := p.lister.List(ctx, cfg)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return svcErr
		}
		return svcerrors.NewInternalErrorUndefined(err)
	}

	annotated, next, svcErr := p.tracker.Track(ctx, p.averages, feeds, hour, cfg.Averages.Smoothing)
	if svcErr != nil {
		return svcErr
	}
	p.averages = next

	spiking := p.screener.Screen(cfg, now, annotated)
	ranked := p.ranker.Rank(spiking, models.SortKey(cfg.Report.SortBy), models.SortOrder(cfg.Report.SortOrder), hour)
	if len(ranked) > cfg.Report.MaxFeeds {
		ranked = ranked[:cfg.Report.MaxFeeds]
	}

	result := &models.CycleResult{
		CycleID:      cycleID,
		StartedAt:    now.UTC(),
		Hour:         hour,
		FetchedFeeds: len(feeds),
		TrackedFeeds: len(next),
		Feeds:        ranked,
	}

	// The report is best effort: a broken sink must not stop tracking.
	if err := p.reporter.Report(ctx, result); err != nil {
		svcErr := errReportFailed(err)
		logger.Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("report failed")
		metricReportsTotal.WithLabelValues(svcErr.Code).Inc()
	} else {
		metricReportsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}

	p.setLast(result)

	// Same for the snapshot: averages stay in memory and the save is retried
	// next cycle.
	if err := p.store.Save(ctx, p.averages); err != nil {
		svcErr := errSnapshotSaveFailed(err)
		logger.Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("snapshot save failed, keeping averages in memory")
		metricSnapshotSavesTotal.WithLabelValues(svcErr.Code).Inc()
	} else {
		metricSnapshotSavesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}

	metricTrackedFeeds.WithLabelValues().Set(float64(len(p.averages)))
	metricReportedFeeds.WithLabelValues().Set(float64(len(ranked)))

	logger.Info().
		Int(loggers.FieldHour, hour).
		Int(loggers.FieldFeedCount, len(feeds)).
		Int(loggers.FieldReportedCount, len(ranked)).
		Msg("poll cycle completed")

	return nil
}

func (p *poller) setLast(result *models.CycleResult) {
	p.mu.Lock()
	p.last = result
	p.mu.Unlock()
}
