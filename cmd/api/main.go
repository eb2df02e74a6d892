package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jaskrrish/Go-Komenco/internal/config"
	"github.com/jaskrrish/Go-Komenco/internal/handlers"
	"github.com/jaskrrish/Go-Komenco/internal/komenco/sampler"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	jobTTL     = flag.Duration("job-ttl", time.Hour, "how long finished jobs are kept, 0 keeps them forever")
)

const minSweepInterval = time.Second

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := cfg.CreateLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	defer logger.Sync()

	client, err := sampler.NewClient(&sampler.Config{
		Host:       cfg.Sampler.Host,
		Port:       cfg.Sampler.Port,
		BaseURL:    cfg.Sampler.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Sampler.Timeout},
		Logger:     logger.Named("sampler"),
	})
	if err != nil {
		logger.Fatal("invalid sampler config", zap.Error(err))
	}

	komencoHandler := handlers.NewKomencoHandler(client, handlers.HandlerOptions{
		Repetitions: cfg.Sampler.Repetitions,
		TopK:        cfg.Sampler.TopK,
		Logger:      logger.Named("jobs"),
	})

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.NewRouter(komencoHandler, logger.Named("http")),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if interval, ok := sweepInterval(*jobTTL); ok {
		go cleanupJobs(ctx, komencoHandler, *jobTTL, interval, logger)
	} else {
		logger.Info("job expiry disabled", zap.Duration("job_ttl", *jobTTL))
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("sampler", client.Endpoint()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// sweepInterval returns how often expired jobs are swept for ttl. A
// non-positive ttl disables expiry.
func sweepInterval(ttl time.Duration) (time.Duration, bool) {
	if ttl <= 0 {
		return 0, false
	}
	interval := ttl / 4
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	return interval, true
}

// cleanupJobs drops finished jobs older than ttl
func cleanupJobs(ctx context.Context, h *handlers.KomencoHandler, ttl, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := h.Jobs().CleanupCompletedJobs(ttl); removed > 0 {
				logger.Debug("expired jobs removed", zap.Int("count", removed))
			}
		}
	}
}
