package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	blog_service "blog-service/internal/application/service/blog"
	sidebar_service "blog-service/internal/application/service/sidebar"
	sidebar_port "blog-service/internal/domain/ports/input/sidebar"
	"blog-service/internal/infrastructure/config"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
	metrics_server "blog-service/internal/infrastructure/inbound/metrics"
	"blog-service/internal/infrastructure/logger"
	redis_cache "blog-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	comment_postgres "blog-service/internal/infrastructure/outbound/repository/comment/postgres"
	post_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres/migrations"
	tag_postgres "blog-service/internal/infrastructure/outbound/repository/tag/postgres"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if cfg.Database.MigrationsRun {
		if err := migrations.Up(cfg.Database.MigrationsURL(), log); err != nil {
			log.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	tagRepo := tag_postgres.NewTagRepository(pool, log, metrics)
	commentRepo := comment_postgres.NewCommentRepository(pool, log, metrics)

	healthChecks := map[string]delivery_http.Pinger{"postgres": pool}

	var sidebarService sidebar_port.Service = sidebar_service.NewSidebarService(postRepo, tagRepo, log)
	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()
		healthChecks["redis"] = redisClient

		sidebarCache := redis_cache.NewSidebarCache(redisClient, log, cfg.Redis.SidebarTTL)
		cached := sidebar_service.NewSidebarServiceCacheDecorator(sidebarService, sidebarCache, log, metrics)
		// Drop panels cached by a previous run.
		if err := cached.Invalidate(ctx); err != nil {
			log.Warn("Failed to drop stale sidebar cache", slog.String("error", err.Error()))
		}
		sidebarService = cached
	}

	blogService := blog_service.NewBlogService(postRepo, tagRepo, commentRepo, sidebarService, log)

	gin.SetMode(cfg.HTTPServer.Mode)
	blogHandler := blog_http.NewBlogHandler(blogService, validator.New(), log, metrics, cfg.Media.BaseURL)
	healthHandler := delivery_http.NewHealthHandler(healthChecks, log, metrics)

	router, err := delivery_http.NewRouter(blogHandler, healthHandler, log, metrics)
	if err != nil {
		log.Error("Failed to build HTTP router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	httpServer := delivery_http.NewServer(router, cfg.HTTPServer, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
