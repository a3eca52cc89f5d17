package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/page-analyzer/internal/adapter/httpfetch"
	"github.com/user/page-analyzer/internal/adapter/postgres"
	redis_adapter "github.com/user/page-analyzer/internal/adapter/redis"
	"github.com/user/page-analyzer/internal/delivery/http/handler"
	"github.com/user/page-analyzer/internal/delivery/http/router"
	"github.com/user/page-analyzer/internal/usecase"
	"github.com/user/page-analyzer/pkg/config"
	"github.com/user/page-analyzer/pkg/logger"
	"github.com/user/page-analyzer/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logger ---
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger.Init(os.Stdout, logLevel)
	slog.Info("Logger initialized", "level", logLevel.String())

	// --- Metrics ---
	metrics.Init()
	slog.Info("Metrics initialized")

	// --- Database Connections ---
	ctx := context.Background()

	// PostgreSQL
	dbpool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	if err := dbpool.Ping(ctx); err != nil {
		slog.Error("Unable to ping database", "error", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(ctx, dbpool); err != nil {
		slog.Error("Unable to migrate database schema", "error", err)
		os.Exit(1)
	}
	slog.Info("PostgreSQL connection pool established")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("Unable to connect to Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("Redis connection established")

	// --- Repositories ---
	urlRepo := postgres.NewURLRepo(dbpool)
	checkRepo := postgres.NewCheckRepo(dbpool)
	urlCache := redis_adapter.NewURLCache(rdb)
	fetcher := httpfetch.NewFetcher(cfg.FetchTimeout)

	// --- Use Cases ---
	urlManager := usecase.NewURLManager(urlRepo, urlCache)
	checkRunner := usecase.NewCheckRunner(urlRepo, checkRepo, fetcher)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(urlManager, checkRunner)
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
		os.Exit(1)
	}
}
