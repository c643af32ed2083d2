package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/unisearch/internal/config"
	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/match"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
	logpkg "github.com/kailas-cloud/unisearch/internal/logger"
	"github.com/kailas-cloud/unisearch/internal/metrics"
	"github.com/kailas-cloud/unisearch/internal/repository/analytics"
	"github.com/kailas-cloud/unisearch/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/unisearch/internal/transport/chi"
	"github.com/kailas-cloud/unisearch/internal/usecase/health"
	"github.com/kailas-cloud/unisearch/internal/usecase/retrieve"
	"github.com/kailas-cloud/unisearch/internal/usecase/score"
	searchuc "github.com/kailas-cloud/unisearch/internal/usecase/search"
	"github.com/kailas-cloud/unisearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting unisearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("catalog_addrs", cfg.Catalog.Addrs),
	)

	keepChars := cfg.Search.KeepChars
	if keepChars == "" {
		keepChars = text.DefaultKeepChars
	}
	norm := text.NewNormalizer(keepChars)

	// Catalog snapshot store
	catalogRepo, err := catalog.New(catalog.Config{
		Addrs:     cfg.Catalog.Addrs,
		Password:  cfg.Catalog.Password,
		KeyPrefix: cfg.Catalog.KeyPrefix,
	}, norm)
	if err != nil {
		logger.Fatal("Failed to create catalog repository", zap.Error(err))
	}
	defer catalogRepo.Close()

	ctx := context.Background()
	readiness := time.Duration(cfg.Catalog.ReadinessTimeout) * time.Second
	if err := catalogRepo.WaitForReady(ctx, readiness); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}
	logger.Info("Connected to catalog store")

	// Analytics collaborator is best-effort; fall back to a logging emitter.
	var emitter searchuc.EventEmitter
	var analyticsCheck health.AnalyticsChecker
	if cfg.Analytics.URL != "" {
		pub, err := analytics.New(cfg.Analytics.URL, cfg.Analytics.Subject)
		if err != nil {
			logger.Warn("Analytics unavailable, events will be dropped", zap.Error(err))
			emitter = analytics.NewNop(logger)
		} else {
			defer pub.Close()
			emitter = pub
			analyticsCheck = pub
		}
	} else {
		emitter = analytics.NewNop(logger)
	}

	metrics.RegisterSearchMetrics()

	// Per-kind retrievers share one weight table and threshold set.
	weights := score.DefaultTable()
	thresholds := match.DefaultThresholds()
	clock := retrieve.SystemClock{}

	vendors := retrieve.NewVendor(catalogRepo, clock, weights, thresholds)
	items := retrieve.NewItem(catalogRepo, vendors, weights, thresholds)
	categories := retrieve.NewCategory(catalogRepo, weights, thresholds)

	searchSvc := searchuc.New(
		map[entity.Kind]searchuc.Retriever{
			entity.Vendor:   vendors,
			entity.Item:     items,
			entity.Category: categories,
		},
		emitter,
		time.Duration(cfg.Search.TimeoutMs)*time.Millisecond,
		logger,
	)

	healthSvc := health.New(catalogRepo, analyticsCheck)

	server := chiTransport.NewServer(searchSvc, healthSvc, norm, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(cfg.Auth.APIKeys),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
