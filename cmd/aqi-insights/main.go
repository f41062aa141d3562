package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/aqi-insights-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/aqi-insights-service/internal/adapter/kafka"
	"github.com/couchcryptid/aqi-insights-service/internal/config"
	"github.com/couchcryptid/aqi-insights-service/internal/observability"
	"github.com/couchcryptid/aqi-insights-service/internal/pipeline"
	"github.com/couchcryptid/aqi-insights-service/internal/wardstore"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store := wardstore.New()
	if cfg.WardSeedPath != "" {
		wards, err := wardstore.LoadFile(cfg.WardSeedPath)
		if err != nil {
			logger.Error("failed to seed ward repository", "path", cfg.WardSeedPath, "error", err)
			os.Exit(1)
		}
		store = wardstore.New(wards...)
		logger.Info("ward repository seeded", "path", cfg.WardSeedPath, "wards", store.Len())
	}
	metrics.WardsTracked.Set(float64(store.Len()))

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(store, logger, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := p.Run(gctx); err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}
		return nil
	})

	// Drain HTTP once a signal arrives or either task fails.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	exitCode := 0
	if err := g.Wait(); err != nil {
		logger.Error("service stopped with error", "error", err)
		exitCode = 1
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
	if exitCode != 0 {
		stop()
		os.Exit(exitCode)
	}
}
