package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cjbdev/iss-sightings/internal/adapter/events"
	"github.com/cjbdev/iss-sightings/internal/adapter/feed"
	"github.com/cjbdev/iss-sightings/internal/adapter/httpadapter"
	"github.com/cjbdev/iss-sightings/internal/config"
	"github.com/cjbdev/iss-sightings/internal/observability"
	"github.com/cjbdev/iss-sightings/internal/refdata"
	"github.com/cjbdev/iss-sightings/internal/skill"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var store *refdata.Store
	if cfg.DataDir != "" {
		store = refdata.NewStore(os.DirFS(cfg.DataDir), logger)
		logger.Info("reference data loaded", "source", cfg.DataDir)
	} else {
		store = refdata.NewEmbeddedStore(logger)
		logger.Info("reference data loaded", "source", "embedded")
	}

	feeds := feed.NewClient(cfg.SightingFeedBaseURL, cfg.CrewFeedURL, cfg.FeedTimeout, metrics, logger)

	// Intent event publishing is feature-flagged via KAFKA_EVENTS_ENABLED.
	var publisher skill.EventPublisher
	var publisherCloser *events.Publisher
	if cfg.KafkaEventsEnabled {
		publisherCloser = events.NewPublisher(cfg, logger)
		publisher = publisherCloser
		logger.Info("intent event publishing enabled", "topic", cfg.KafkaEventsTopic)
	} else {
		logger.Info("intent event publishing disabled")
	}

	router := skill.New(store, feeds, publisher, metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, router, router, logger)

	if err := router.CheckReadiness(context.Background()); err != nil {
		logger.Warn("skill starting degraded", "error", err)
	} else {
		metrics.SkillReady.Set(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	metrics.SkillReady.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisherCloser != nil {
		if err := publisherCloser.Close(); err != nil {
			logger.Error("event publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
