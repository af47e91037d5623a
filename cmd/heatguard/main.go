package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/heatguard-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/heatguard-service/internal/adapter/kafka"
	"github.com/couchcryptid/heatguard-service/internal/adapter/mapbox"
	"github.com/couchcryptid/heatguard-service/internal/catalog"
	"github.com/couchcryptid/heatguard-service/internal/config"
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/observability"
	"github.com/couchcryptid/heatguard-service/internal/report"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		logger.Error("failed to load catalog", "error", err, "path", cfg.CatalogFile)
		os.Exit(1)
	}
	recordCatalogIssues(cat, metrics, logger)

	// Location labels come from Mapbox when enabled, otherwise the auto-detected placeholder.
	var locator domain.LocationProvider = domain.StaticLocation("")
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder, err := mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		if err != nil {
			logger.Error("failed to create geocoder", "error", err)
			os.Exit(1)
		}
		locator = domain.NewGeocodedLocation(geocoder, cfg.DeviceLat, cfg.DeviceLon, logger)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	clock := clockwork.NewRealClock()
	checks := []sharedobs.ReadinessChecker{cat}

	var dispatcher domain.Dispatcher
	var kafkaDispatcher *kafkaadapter.Dispatcher
	if cfg.DispatchEnabled {
		kafkaDispatcher = kafkaadapter.NewDispatcher(cfg, logger)
		dispatcher = kafkaDispatcher
		checks = append(checks, kafkaDispatcher)
		logger.Info("kafka dispatch enabled", "topic", cfg.KafkaDispatchTopic, "brokers", cfg.KafkaBrokers)
	} else {
		dispatcher = report.NewSimulatedDispatcher(clock, cfg.SubmitLatency, cfg.DispatchETAMinutes, logger)
		logger.Info("simulated dispatch enabled", "latency", cfg.SubmitLatency)
	}

	store, err := report.NewStore(locator, dispatcher, report.Config{
		Clock:           clock,
		ResetDelay:      cfg.ResetDelay,
		DispatchTimeout: cfg.DispatchTimeout,
		IdleTimeout:     cfg.SessionIdleTimeout,
		MaxSessions:     cfg.MaxSessions,
	}, logger, metrics)
	if err != nil {
		logger.Error("failed to create session store", "error", err)
		os.Exit(1)
	}

	api := httpadapter.NewAPI(cat, store, metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, api, httpadapter.AllReady(checks...), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	store.Close()
	if kafkaDispatcher != nil {
		if err := kafkaDispatcher.Close(); err != nil {
			logger.Error("kafka dispatcher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

func recordCatalogIssues(c *catalog.Catalog, metrics *observability.Metrics, logger *slog.Logger) {
	counts := map[catalog.IssueLevel]int{}
	for _, issue := range catalog.Validate(c) {
		counts[issue.Level]++
		logger.Warn("catalog issue", "level", issue.Level, "section", issue.Section, "message", issue.Message)
	}
	metrics.CatalogIssues.WithLabelValues(string(catalog.LevelError)).Set(float64(counts[catalog.LevelError]))
	metrics.CatalogIssues.WithLabelValues(string(catalog.LevelWarning)).Set(float64(counts[catalog.LevelWarning]))
}
