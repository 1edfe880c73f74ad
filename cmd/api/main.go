package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gamepulse/internal/infra/adapter/persistence/memory"
	pgRepo "gamepulse/internal/infra/adapter/persistence/postgres"
	sqliteRepo "gamepulse/internal/infra/adapter/persistence/sqlite"
	"gamepulse/internal/infra/db"
	"gamepulse/internal/infra/mailer"
	"gamepulse/internal/observability/logging"
	"gamepulse/internal/repository"
	"gamepulse/pkg/config"

	artUC "gamepulse/internal/usecase/article"
	revUC "gamepulse/internal/usecase/review"
	subUC "gamepulse/internal/usecase/subscription"

	hhttp "gamepulse/internal/handler/http"
	harticle "gamepulse/internal/handler/http/article"
	"gamepulse/internal/handler/http/requestid"
	hreview "gamepulse/internal/handler/http/review"
	hsub "gamepulse/internal/handler/http/subscription"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	driver := db.DriverFromEnv()
	repos, database := initRepositories(logger, driver)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	if config.GetEnvBool("SEED_DATA", driver == db.DriverMemory) {
		if err := db.Seed(context.Background(), repos.Articles, repos.Reviews); err != nil {
			logger.Error("failed to seed catalog", slog.Any("error", err))
			os.Exit(1)
		}
	}

	version := config.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, repos, database, version)

	runServer(logger, handler, repos.Articles, version)
}

// repositories bundles the storage backends behind their interfaces so
// the rest of main does not care which driver is active.
type repositories struct {
	Articles      repository.ArticleRepository
	Reviews       repository.ReviewRepository
	Subscriptions repository.SubscriptionRepository
	Users         repository.UserRepository
}

// initRepositories selects the storage driver, opens and migrates the
// database when one is needed, and returns the repository set. The
// returned *sql.DB is nil for the in-memory driver.
func initRepositories(logger *slog.Logger, driver string) (repositories, *sql.DB) {
	if driver == db.DriverMemory {
		logger.Info("using in-memory storage")
		return repositories{
			Articles:      memory.NewArticleRepo(),
			Reviews:       memory.NewReviewRepo(),
			Subscriptions: memory.NewSubscriptionRepo(),
			Users:         memory.NewUserRepo(),
		}, nil
	}

	database := db.Open(driver)
	if err := db.MigrateUp(database, driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready", slog.String("driver", driver))

	if driver == db.DriverSQLite {
		return repositories{
			Articles:      sqliteRepo.NewArticleRepo(database),
			Reviews:       sqliteRepo.NewReviewRepo(database),
			Subscriptions: sqliteRepo.NewSubscriptionRepo(database),
			Users:         sqliteRepo.NewUserRepo(database),
		}, database
	}

	return repositories{
		Articles:      pgRepo.NewArticleRepo(database),
		Reviews:       pgRepo.NewReviewRepo(database),
		Subscriptions: pgRepo.NewSubscriptionRepo(database),
		Users:         pgRepo.NewUserRepo(database),
	}, database
}

// setupServer wires services, routes, and middleware into one handler.
func setupServer(logger *slog.Logger, repos repositories, database *sql.DB, version string) http.Handler {
	artSvc := artUC.Service{Repo: repos.Articles}
	revSvc := revUC.Service{Repo: repos.Reviews}
	subSvc := subUC.Service{Repo: repos.Subscriptions, Mailer: initMailer(logger)}

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, logger)
	hreview.Register(mux, revSvc)
	hsub.Register(mux, subSvc)

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", hhttp.LivenessHandler())
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// initMailer configures the welcome mailer when SMTP settings are
// present. Without them sign-ups still work, just without the email.
func initMailer(logger *slog.Logger) subUC.Mailer {
	cfg := mailer.ConfigFromEnv()
	if !cfg.Configured() {
		logger.Info("SMTP not configured, welcome emails disabled")
		return nil
	}
	logger.Info("welcome emails enabled",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port))
	return mailer.New(cfg)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Rate Limit → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	rateLimit := config.GetEnvInt("RATE_LIMIT_REQUESTS", 100)
	rateWindow := config.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute)
	limiter := hhttp.NewRateLimiter(rateLimit, rateWindow)

	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = limiter.Limit(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, articles repository.ArticleRepository, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go publishCatalogSize(ctx, articles)

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// publishCatalogSize keeps the articles_total gauge in sync with the
// catalog until the context is cancelled.
func publishCatalogSize(ctx context.Context, articles repository.ArticleRepository) {
	update := func() {
		countCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		count, err := articles.Count(countCtx)
		if err != nil {
			slog.Debug("failed to count articles for metrics", slog.Any("error", err))
			return
		}
		hhttp.UpdateArticlesTotal(count)
	}

	update()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			update()
		case <-ctx.Done():
			return
		}
	}
}
