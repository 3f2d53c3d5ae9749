package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"github.com/Prajwalng2/Major-Project-temp/internal/ai"
	"github.com/Prajwalng2/Major-Project-temp/internal/config"
	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
	"github.com/Prajwalng2/Major-Project-temp/internal/telemetry"
	"github.com/Prajwalng2/Major-Project-temp/middleware"
	"github.com/Prajwalng2/Major-Project-temp/routes"
	"github.com/Prajwalng2/Major-Project-temp/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	// Tracing is optional; without an endpoint the service runs untraced
	var shutdownTracer func()
	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err = telemetry.InitTracer(cfg.ServiceName, cfg.OTLPEndpoint)
		if err != nil {
			logger.Warn("Failed to initialize tracer", "error", err)
		}
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		logger.Warn("Failed to initialize metrics", "error", err)
	}

	// Connect to MongoDB
	mongoClient, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	}()

	// Redis is best-effort: without it the catalog serves uncached and
	// rate limiting is skipped.
	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache and rate limiting", "error", err)
		rdb = nil
	}

	db := mongoClient.Database(cfg.DBName)

	catalog := services.NewCatalogService(
		db.Collection("schemes"),
		rdb,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		metrics,
	)

	refresher := services.NewRefreshScheduler(catalog, time.Duration(cfg.CatalogRefreshMinutes)*time.Minute)
	if err := refresher.Start(); err != nil {
		logger.Warn("Failed to start catalog refresh scheduler", "error", err)
	}
	defer refresher.Stop()

	var asynqClient *asynq.Client
	if rdb != nil {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer asynqClient.Close()
	}

	applications, err := services.NewApplicationService(db, asynqClient, metrics)
	if err != nil {
		log.Fatal("Failed to initialize application service:", err)
	}

	exportService := services.NewExportService(catalog, db.Collection("applications"))

	var assistant *ai.Assistant
	if cfg.GeminiAPIKey != "" {
		assistant, err = ai.NewAssistant(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("Failed to initialize assistant", "error", err)
		} else {
			defer assistant.Close()
		}
	}

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddlewareWithOrigins(cfg.CORSOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.TracingMiddleware())
	router.Use(middleware.EnrichTrace())
	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}
	if rdb != nil {
		router.Use(middleware.RateLimitMiddleware(rdb, cfg))
	}
	router.Use(middleware.RequestSizeLimit(cfg.MaxFileSize))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	// Setup routes
	routes.SetupSchemeRoutes(router, catalog)
	routes.SetupSearchRoutes(router, catalog, metrics)
	routes.SetupMatcherRoutes(router, catalog, metrics)
	routes.SetupApplicationRoutes(router, cfg, catalog, applications)
	routes.SetupExportRoutes(router, exportService)
	routes.SetupAssistantRoutes(router, assistant, catalog)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if shutdownTracer != nil {
		shutdownTracer()
	}

	logger.Info("Server exited")
}
