package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/team-roster/internal/app"
	"github.com/riskibarqy/team-roster/internal/config"
	"github.com/riskibarqy/team-roster/internal/observability"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
)

// telemetry starts the tracing exporter and the profiler.
type telemetry struct {
	initTracing  func(config.Config, *logging.Logger) (func(context.Context) error, error)
	initProfiler func(config.Config, *logging.Logger) (func() error, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel,
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger, telemetry{
		initTracing:  observability.InitUptrace,
		initProfiler: observability.InitPyroscope,
	})
	stop()

	if err != nil {
		logger.Error("api stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves until ctx is done or the server fails. Telemetry started here
// is flushed on every return path.
func run(ctx context.Context, cfg config.Config, logger *logging.Logger, tel telemetry) error {
	shutdownTracing, err := tel.initTracing(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if shutdownErr := shutdownTracing(flushCtx); shutdownErr != nil {
			logger.Error("shutdown uptrace failed", "error", shutdownErr)
		}
	}()

	stopProfiler, err := tel.initProfiler(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() {
		if stopErr := stopProfiler(); stopErr != nil {
			logger.Error("stop pyroscope failed", "error", stopErr)
		}
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	srv := application.Server

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			_ = application.Close(context.Background())
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = application.Close(shutdownCtx)
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err := application.Close(shutdownCtx); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
