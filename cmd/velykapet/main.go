package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/velykapet/catalog/internal/app"
	"github.com/velykapet/catalog/internal/cart"
	"github.com/velykapet/catalog/internal/catalog"
	"github.com/velykapet/catalog/internal/observability"
	"github.com/velykapet/catalog/internal/perfcheck"
	"github.com/velykapet/catalog/internal/platform/db"
	"github.com/velykapet/catalog/internal/source"
	"github.com/velykapet/catalog/jobs"
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

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	var remote catalog.RemoteSource
	if cfg.ProductSource == "postgres" {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		remote = source.NewPGSource(pool)
	} else {
		remote = source.NewHTTPSource(cfg.RemoteBaseURL, nil)
	}

	cartManager := cart.NewManager(logger, cart.NewRedisStore(redisClient, ""))
	if err := cartManager.Load(ctx); err != nil {
		logger.Warn("restore persisted cart", slog.Any("error", err))
	}

	session := catalog.NewSession(catalog.SessionDeps{
		Logger:  logger,
		Source:  remote,
		Imports: source.NewRedisImportStore(redisClient, "", logger),
		Cart:    cartManager,
		Config: catalog.Config{
			PageSize:              cfg.PageSize,
			PriceCeilingSentinel:  cfg.PriceCeilingSentinel,
			FreeShippingThreshold: cfg.FreeShippingThreshold,
		},
		Readiness: catalog.ReadinessConfig{
			Attempts: cfg.ReadinessAttempts,
			Delay:    cfg.ReadinessDelay,
		},
	})
	if err := session.Load(ctx); err != nil {
		logger.Error("initial catalog load", slog.Any("error", err))
	}

	perfBase := cfg.PerfBaseURL
	if perfBase == "" {
		perfBase = "http://127.0.0.1" + cfg.AppAddr
	}
	suite := perfcheck.NewSuite(perfcheck.SuiteDeps{
		Logger:  logger,
		Redis:   redisClient,
		BaseURL: perfBase,
	})

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		CatalogHandler: catalog.NewHandler(logger, session),
		CartHandler:    cart.NewHandler(logger, cartManager),
		PerfHandler:    perfcheck.NewHandler(logger, perfcheck.NewResultStore(redisClient), suite),
		JobsHandler:    jobs.NewHandler(inspector, logger),
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
