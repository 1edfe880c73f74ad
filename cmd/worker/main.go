package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"gamepulse/internal/handler/http/respond"
	"gamepulse/internal/infra/adapter/persistence/memory"
	pgRepo "gamepulse/internal/infra/adapter/persistence/postgres"
	sqliteRepo "gamepulse/internal/infra/adapter/persistence/sqlite"
	"gamepulse/internal/infra/db"
	"gamepulse/internal/infra/feed"
	"gamepulse/internal/infra/fetcher"
	"gamepulse/internal/infra/newswire"
	workerPkg "gamepulse/internal/infra/worker"
	"gamepulse/internal/observability/logging"
	"gamepulse/internal/repository"
	"gamepulse/internal/usecase/ingest"
	"gamepulse/pkg/config"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	workerConfig, err := workerPkg.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("ingest_timeout", workerConfig.RunTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	articles, database := initArticleRepo(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metrics := workerPkg.NewMetrics()

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	svc := setupIngestService(logger, articles, metrics, workerConfig)

	startCronWorker(ctx, logger, svc, workerConfig, metrics, healthServer)
}

// initArticleRepo selects the storage driver and returns the article
// repository the worker writes into. The *sql.DB is nil for the
// in-memory driver (only useful for local experiments; the API and
// worker then do not share state).
func initArticleRepo(logger *slog.Logger) (repository.ArticleRepository, *sql.DB) {
	driver := db.DriverFromEnv()
	if driver == db.DriverMemory {
		logger.Warn("worker running on in-memory storage, ingested articles are not shared with the API")
		return memory.NewArticleRepo(), nil
	}

	database := db.Open(driver)
	if err := db.MigrateUp(database, driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready", slog.String("driver", driver))

	if driver == db.DriverSQLite {
		return sqliteRepo.NewArticleRepo(database), database
	}
	return pgRepo.NewArticleRepo(database), database
}

// setupIngestService wires the news sources and the content enhancer
// into the ingest service.
func setupIngestService(logger *slog.Logger, articles repository.ArticleRepository, metrics *workerPkg.Metrics, cfg workerPkg.Config) *ingest.Service {
	httpClient := createHTTPClient()

	var sources []ingest.NewsSource

	wireConfig := newswire.ConfigFromEnv()
	if wireConfig.APIKey != "" {
		sources = append(sources, newswire.New(wireConfig, httpClient))
		logger.Info("news API source enabled")
	} else {
		logger.Info("NEWS_API_KEY not set, news API source disabled")
	}

	feeds, err := config.LoadFeeds(cfg.FeedsPath)
	if err != nil {
		logger.Error("failed to load feeds config", slog.Any("error", err))
		os.Exit(1)
	}
	for _, f := range feeds {
		sources = append(sources, feed.NewRSSSource(f.Name, f.URL, httpClient))
	}
	logger.Info("news sources initialized", slog.Int("count", len(sources)))

	contentFetchConfig, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load content fetch configuration", slog.Any("error", err))
		logger.Warn("content fetching disabled due to configuration error")
		contentFetchConfig = fetcher.DefaultConfig()
		contentFetchConfig.Enabled = false
	}

	var enhancer ingest.ContentEnhancer
	if contentFetchConfig.Enabled {
		enhancer = fetcher.NewReadabilityFetcher(contentFetchConfig)
		logger.Info("content fetching enabled",
			slog.Int("threshold", contentFetchConfig.Threshold),
			slog.Duration("timeout", contentFetchConfig.Timeout))
	} else {
		logger.Info("content fetching disabled")
	}

	return &ingest.Service{
		ArticleRepo:      articles,
		Sources:          sources,
		Enhancer:         enhancer,
		ContentThreshold: contentFetchConfig.Threshold,
		Observe:          metrics.RecordItem,
	}
}

// createHTTPClient creates an HTTP client with timeouts and connection
// pooling. TLS 1.2+ is enforced.
func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// startCronWorker starts the cron scheduler and blocks until shutdown.
// One ingestion run fires immediately so a fresh deployment does not
// wait for the first scheduled slot.
func startCronWorker(ctx context.Context, logger *slog.Logger, svc *ingest.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runIngestJob(ctx, logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))

	go runIngestJob(ctx, logger, svc, cfg, metrics)

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("cron jobs did not finish in time")
	}
	logger.Info("worker stopped")
}

// runIngestJob executes a single ingestion run with timeout and metrics.
func runIngestJob(ctx context.Context, logger *slog.Logger, svc *ingest.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics) {
	startTime := time.Now()
	logger.Info("ingestion started")

	runCtx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	stats, err := svc.Run(runCtx)
	duration := time.Since(startTime)
	metrics.RecordRunDuration(duration.Seconds())
	if err != nil {
		// Secrets are masked before the error reaches the log.
		logger.Error("ingestion failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordRun("failure")
		return
	}

	metrics.RecordRun("success")
	metrics.RecordLastSuccess()

	logger.Info("ingestion completed",
		slog.Int("sources", stats.Sources),
		slog.Int("items", stats.Items),
		slog.Int("inserted", stats.Inserted),
		slog.Int("duplicated", stats.Duplicated),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", duration))
}
