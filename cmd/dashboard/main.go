package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	analytichttp "github.com/sva-insights/founder-dashboard/internal/analytics/http"
	"github.com/sva-insights/founder-dashboard/internal/analytics/svg"
	"github.com/sva-insights/founder-dashboard/internal/app"
	"github.com/sva-insights/founder-dashboard/internal/auth"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
	"github.com/sva-insights/founder-dashboard/internal/insights"
	insightshttp "github.com/sva-insights/founder-dashboard/internal/insights/http"
	"github.com/sva-insights/founder-dashboard/internal/observability"
	"github.com/sva-insights/founder-dashboard/internal/platform/cache"
	"github.com/sva-insights/founder-dashboard/internal/shared"
	"github.com/sva-insights/founder-dashboard/internal/view"
	"github.com/sva-insights/founder-dashboard/jobs"
	"github.com/sva-insights/founder-dashboard/web"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dataFS, err := fs.Sub(web.Data, "data")
	if err != nil {
		logger.Error("open datasets", slog.Any("error", err))
		os.Exit(1)
	}
	store, err := dataset.Load(ctx, dataFS)
	if err != nil {
		logger.Error("load datasets", slog.Any("error", err))
		os.Exit(1)
	}
	for kind, n := range store.Counts() {
		logger.Info("dataset loaded", slog.String("kind", string(kind)), slog.Int("records", n))
	}

	metrics := observability.NewMetrics()

	var redisClient *redis.Client
	if cfg.CacheEnabled() {
		redisClient, err = cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, serving without cache", slog.Any("error", err))
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
		}
	}
	viewCache := analytics.NewCache(redisClient, cfg.CacheTTL)
	viewCache.SetObserver(metrics)
	if changed, err := viewCache.Sync(ctx, store.Fingerprint()); err != nil {
		logger.Warn("sync cache fingerprint", slog.Any("error", err))
	} else if changed {
		logger.Info("dataset changed, cache invalidated", slog.String("fingerprint", store.Fingerprint()))
	}

	sessionManager := shared.NewSessionManager("dashboard_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	authService, err := auth.NewService(cfg.DashboardPasswordHash)
	if err != nil {
		logger.Error("init auth", slog.Any("error", err))
		os.Exit(1)
	}
	authHandler := auth.NewHandler(logger, authService, templates, sessionManager, csrfManager, cfg.LoginRateLimit)

	analyticsService := analytics.NewService(store, viewCache)
	insightsService := insights.NewService(store, insights.CohortFilters{Earlier: cfg.CohortEarlier, Later: cfg.CohortLater})
	analyticsHandler := analytichttp.NewHandler(logger, analyticsService, insightsService, store, templates, svg.Renderer{}, csrfManager)
	insightsHandler := insightshttp.NewHandler(logger, insightsService, templates, csrfManager)

	var inspector *asynq.Inspector
	if redisClient != nil {
		redisOpts := jobs.RedisOpt(redisClient.Options())
		inspector = asynq.NewInspector(redisOpts)
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		enqueueWarmup(ctx, redisOpts, logger)
	}
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		CSRFManager:      csrfManager,
		AuthHandler:      authHandler,
		AnalyticsHandler: analyticsHandler,
		InsightsHandler:  insightsHandler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

// enqueueWarmup asks the worker to refill the view cache after a deploy.
func enqueueWarmup(ctx context.Context, opts asynq.RedisClientOpt, logger *slog.Logger) {
	client, err := jobs.NewClient(opts)
	if err != nil {
		logger.Warn("init job client", slog.Any("error", err))
		return
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()
	info, err := client.EnqueueWarmup(ctx, "startup")
	if err != nil {
		logger.Warn("enqueue warmup", slog.Any("error", err))
		return
	}
	if info != nil {
		logger.Info("warmup enqueued", slog.String("task_id", info.ID))
	}
}
