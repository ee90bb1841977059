package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	app "github.com/okian/ladder/internal/app"
	"github.com/okian/ladder/internal/config"
	"github.com/okian/ladder/pkg/logger"
	"github.com/okian/ladder/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 10 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// Expose /metrics on the custom registry when an address is configured.
	var srv *http.Server
	if cfg.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

		srv = &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		go func() {
			loggerInstance.Info(ctx, "starting metrics server", logger.String("addr", cfg.Addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				os.Stderr.WriteString("metrics server failed: " + err.Error() + "\n")
			}
		}()
	}

	// Build and run the ranking service.
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithPlayerCount(cfg.PlayerCount),
		app.WithReportingInterval(cfg.ReportingInterval),
		app.WithSeed(cfg.Seed),
		app.WithLevelRange(cfg.MinLevel, cfg.MaxLevel),
		app.WithStreamBuffer(cfg.StreamBuffer),
		app.WithGeneratorWorkers(cfg.GeneratorWorkers),
	)

	summary, err := svc.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "ranking run failed", logger.Error(err))
	} else {
		loggerInstance.Info(ctx, "ranking run summary",
			logger.Int("players", summary.PlayerCount),
			logger.Int("topSetSize", len(summary.Online.Top)),
			logger.Int("checkpoints", len(summary.Online.Cutoffs)),
			logger.Duration("elapsed", summary.Elapsed),
		)
	}

	if srv != nil {
		// Keep serving metrics until interrupted.
		<-ctx.Done()
		loggerInstance.Info(ctx, "shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			loggerInstance.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}

	loggerInstance.Info(ctx, "stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
