package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/sva-insights/founder-dashboard/internal/analytics"
	"github.com/sva-insights/founder-dashboard/internal/app"
	"github.com/sva-insights/founder-dashboard/internal/dataset"
	jobmetrics "github.com/sva-insights/founder-dashboard/internal/jobs"
	"github.com/sva-insights/founder-dashboard/internal/platform/cache"
	"github.com/sva-insights/founder-dashboard/jobs"
	"github.com/sva-insights/founder-dashboard/web"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	if !cfg.CacheEnabled() {
		logger.Error("worker requires REDIS_ADDR")
		os.Exit(1)
	}

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

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	viewCache := analytics.NewCache(redisClient, cfg.CacheTTL)
	analyticsService := analytics.NewService(store, viewCache)
	warmupJob := jobs.NewWarmupJob(analyticsService, viewCache, store.Fingerprint(), logger, jobmetrics.NewMetrics(nil))

	warmupTask, err := jobs.NewWarmupTask("schedule")
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: jobs.RedisOpt(redisClient.Options()),
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.WarmupCron, Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker", slog.String("cron", cfg.WarmupCron))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
