package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jwseo/maechuldash-backend/config"
	"github.com/jwseo/maechuldash-backend/internal/app/controller"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/internal/app/service"
	"github.com/jwseo/maechuldash-backend/internal/dataset"
	"github.com/jwseo/maechuldash-backend/internal/db"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
	"github.com/jwseo/maechuldash-backend/internal/router"
	"github.com/jwseo/maechuldash-backend/internal/scheduler"
	"github.com/jwseo/maechuldash-backend/internal/websocket"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
	"github.com/jwseo/maechuldash-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting MAECHULDASH Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis는 선택 사항: 없으면 페이로드 캐시 없이 동작
	payloadCacheEnabled := true
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, payload caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
		payloadCacheEnabled = false
	} else {
		defer redis.Close()
	}

	// Payload source: HTTP 정적 호스트 또는 S3
	var source dataset.Source
	switch cfg.Dashboard.Source {
	case "s3":
		source = dataset.NewS3Source(&cfg.S3)
	default:
		source = dataset.NewHTTPSource(cfg.Dashboard.BaseURL)
	}

	var cache *dataset.CachingSource
	if payloadCacheEnabled {
		cache = dataset.NewCachingSource(source, cfg.Redis.PayloadTTL)
		source = cache
	}
	loader := dataset.NewLoader(source, cfg.Dashboard.FilePrefix)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	areaRepo := repository.NewStoreAreaRepository(db.GetDB())
	commentaryRepo := repository.NewCommentaryRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	dashboardService := service.NewDashboardService(loader, cache, areaRepo)
	commentaryService := service.NewCommentaryService(commentaryRepo)
	exportService := service.NewExportService()

	// WebSocket hub for refresh notifications
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	dashboardController := controller.NewDashboardController(dashboardService, hub)
	commentaryController := controller.NewCommentaryController(commentaryService)
	exportController := controller.NewExportController(dashboardService, exportService)
	wsController := controller.NewWSController(hub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		dashboardController,
		commentaryController,
		exportController,
		wsController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// 당월 대시보드 주기 갱신
	refreshScheduler := scheduler.NewRefreshScheduler(
		dashboardService, hub, cfg.Dashboard.RefreshSpec, cfg.Dashboard.CurrentPeriod,
	)
	if err := refreshScheduler.Start(); err != nil {
		logger.Fatal("Failed to start refresh scheduler", err)
	}
	defer refreshScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
