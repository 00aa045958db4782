package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SiloGit/bcnotif/internal/app"
	"github.com/SiloGit/bcnotif/internal/shared/configs"

	"github.com/jessevdk/go-flags"
)

type options struct {
	ConfigPath string   `short:"c" long:"config" env:"BCNOTIF_CONFIG" default:"./configs/configs.yml" description:"Path to the YAML config file"`
	StoreDir   string   `long:"store-dir" env:"BCNOTIF_STORE_DIR" description:"Directory holding the averages snapshot (overrides config)"`
	Threshold  *float64 `short:"t" long:"threshold" env:"BCNOTIF_THRESHOLD" description:"Spike threshold, percent above the hourly average (overrides config)"`
	UpdateTime *float64 `short:"u" long:"update-time" env:"BCNOTIF_UPDATE_TIME" description:"Minutes between polling cycles, minimum 5 (overrides config)"`
	SortOrder  string   `short:"s" long:"sort-order" env:"BCNOTIF_SORT_ORDER" choice:"ascending" choice:"descending" description:"Report sort order (overrides config)"`
	LogLevel   string   `long:"log-level" env:"BCNOTIF_LOG_LEVEL" description:"Log level: trace, debug, info, warn, error (overrides config)"`
	Port       *int     `long:"port" env:"BCNOTIF_PORT" description:"Ops HTTP server port (overrides config)"`
}

func main() {
	var opts options

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Config validation enforces the floor too, but a flag violation should
	// fail with usage rather than a validation error.
	if opts.UpdateTime != nil && *opts.UpdateTime < 5 {
		fmt.Fprintf(os.Stderr, "update time cannot be below 5 minutes (got %v)\n\n", *opts.UpdateTime)
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	configSource := configs.NewFileSource(opts.ConfigPath, configs.Overrides{
		StoreDir:   opts.StoreDir,
		Threshold:  opts.Threshold,
		UpdateTime: opts.UpdateTime,
		SortOrder:  opts.SortOrder,
		LogLevel:   opts.LogLevel,
		Port:       opts.Port,
	})

	cfg, err := configSource.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(configSource, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// Start poller and ops server in goroutine. Stdout stays reserved for
	// the spike report, so startup chatter goes through the stderr logger.
	go func() {
		if err := application.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Forced to shut down: %v\n", err)
	}
}
