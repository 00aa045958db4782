package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/SiloGit/bcnotif/internal/averages"
	internalhttp "github.com/SiloGit/bcnotif/internal/http"
	"github.com/SiloGit/bcnotif/internal/listings"
	"github.com/SiloGit/bcnotif/internal/pollers"
	"github.com/SiloGit/bcnotif/internal/reporters"
	"github.com/SiloGit/bcnotif/internal/screeners"
	"github.com/SiloGit/bcnotif/internal/shared/configs"
	"github.com/SiloGit/bcnotif/internal/shared/filestorages"
	"github.com/SiloGit/bcnotif/internal/shared/loggers"
	"github.com/SiloGit/bcnotif/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	poller           pollers.Poller
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance. configSource re-reads the
// config between cycles; config is the snapshot the process booted with.
func New(configSource configs.Source, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "bcnotif").
		Logger()

	// Initialize snapshot storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	averageStore := stores.NewAverageStore(fileStorage)

	// A corrupt snapshot aborts startup: silently starting fresh would
	// overwrite the accumulated averages on the first save.
	initialAverages, err := averageStore.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load averages snapshot: %w", err)
	}

	// Initialize polling pipeline
	lister := listings.NewHTTPLister()
	tracker := averages.NewTrackerService(averages.NewHourlyUpdater())
	screener := screeners.NewSpikeScreener()
	ranker := screeners.NewReportRanker()
	reporter := reporters.NewConsoleReporter(os.Stdout)

	pollerLogger := appLogger.With().Str(loggers.FieldComponent, "poller").Logger()
	poller := pollers.NewPoller(
		configSource,
		lister,
		tracker,
		screener,
		ranker,
		averageStore,
		reporter,
		config,
		initialAverages,
		pollerLogger,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(poller, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		poller:    poller,
	}, nil
}

// Start starts the poller and the ops HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting bcnotif on port %d (log_level=%s, file_storage_root_dir=%s, update_time=%v)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Poll.Interval())

	// start background poller
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.poller.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel the background poller
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Poller cancelled")
	}

	// 3) Wait for the poller to finish its cycle
	app.poller.Stop()
	app.appLogger.Info().Msg("Poller stopped")

	return nil
}
