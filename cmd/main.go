package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/geo_checkin_service/internal/config"
	v1 "github.com/shenikar/geo_checkin_service/internal/handler/http/v1"
	"github.com/shenikar/geo_checkin_service/internal/metrics"
	"github.com/shenikar/geo_checkin_service/internal/repository"
	"github.com/shenikar/geo_checkin_service/internal/service"
	"github.com/shenikar/geo_checkin_service/internal/webhook"
	"github.com/shenikar/geo_checkin_service/pkg/logger"
	"github.com/shenikar/geo_checkin_service/pkg/postgres"
	redisclient "github.com/shenikar/geo_checkin_service/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geo_checkin_service/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// memoryCacheMaxEntries - предел записей кеша в памяти процесса
const memoryCacheMaxEntries = 10000

// @title Geo Check-in Service API
// @version 1.0
// @description Nearby places and users search with place check-ins.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newCacheStore выбирает хранилище кеша результатов поиска
func newCacheStore(cfg *config.Config, redisClient *redis.Client) service.CacheStore {
	if cfg.CacheBackend == config.CacheBackendMemory {
		return repository.NewMemoryCacheStore(memoryCacheMaxEntries, time.Now)
	}
	return repository.NewSearchCacheRepository(redisClient)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики Prometheus
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics()
	if err := appMetrics.Register(registry); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	placeRepo := repository.NewPlaceRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)
	locationRepo := repository.NewLocationRepository(dbpool)
	checkinRepo := repository.NewCheckinRepository(dbpool)
	cacheStore := newCacheStore(cfg, redisClient)
	log.WithField("backend", cfg.CacheBackend).Info("Search cache initialized")

	// Инициализация сервисов
	searchService := service.NewCachedSearchService(
		service.NewSearchService(placeRepo, locationRepo, log, appMetrics),
		cacheStore,
		cfg.SearchCacheTTL,
		time.Now,
		log,
		appMetrics,
	)
	checkinService := service.NewCheckinService(service.CheckinServiceDeps{
		Checkins:  checkinRepo,
		Places:    placeRepo,
		Users:     userRepo,
		Publisher: webhookPublisher,
		Cooldown:  cfg.CheckinCooldown,
		Logger:    log,
		Metrics:   appMetrics,
	})
	placeService := service.NewPlaceService(placeRepo, log)
	userService := service.NewUserService(userRepo, locationRepo, cfg.StatsTimeWindowMinutes, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Search:   searchService,
		Checkins: checkinService,
		Places:   placeService,
		Users:    userService,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestIDMiddleware(), v1.RequestLoggerMiddleware(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер вебхуков и ждем завершения текущей доставки
	cancel()
	select {
	case <-webhookWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
