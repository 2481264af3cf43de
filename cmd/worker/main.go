package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/velykapet/catalog/internal/app"
	"github.com/velykapet/catalog/internal/observability"
	"github.com/velykapet/catalog/internal/perfcheck"
	"github.com/velykapet/catalog/internal/platform/cache"
	"github.com/velykapet/catalog/jobs"
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

	serviceBase := cfg.PerfBaseURL
	if serviceBase == "" {
		serviceBase = "http://127.0.0.1" + cfg.AppAddr
	}

	metrics := observability.NewMetrics()

	suite := perfcheck.NewSuite(perfcheck.SuiteDeps{
		Logger:  logger,
		Redis:   redisClient,
		BaseURL: serviceBase,
	})
	perfJob := &jobs.PerfSuiteJob{Suite: suite, Logger: logger, Metrics: metrics}
	refreshJob := &jobs.CatalogRefreshJob{
		RefreshURL: serviceBase + "/api/catalog/refresh",
		Logger:     logger,
		Metrics:    metrics,
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskPerfSuite, Handler: perfJob.Handle},
			{Type: jobs.TaskCatalogRefresh, Handler: refreshJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 * * * *", Task: jobs.NewPerfSuiteTask(), Options: []asynq.Option{asynq.MaxRetry(2)}},
			{Spec: "*/30 * * * *", Task: jobs.NewCatalogRefreshTask(), Options: []asynq.Option{asynq.MaxRetry(2)}},
		},
	})
	if err != nil {
		logger.Error("build worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker", slog.String("redis", cfg.RedisAddr))
	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
