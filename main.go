package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/config"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/handler"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/middleware"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/pkg/logger"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/pkg/metrics"
	"github.com/spoiledshruu/SaaS-contracts-dashboard/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Select the contract data source
	source, err := newSource(cfg)
	if err != nil {
		slog.Error("failed to initialize contract source", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	appState := service.NewAppState()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	contractHandler := handler.NewContractHandler(source, appState, m, cfg.Pagination.ItemsPerPage)
	reportHandler := handler.NewReportHandler(contractHandler, m)
	notificationHandler := handler.NewNotificationHandler(appState)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())     // Request ID for tracing
	router.Use(middleware.Recovery())      // Panic recovery
	router.Use(middleware.RequestLogger()) // Access logging
	router.Use(corsMiddleware())           // CORS
	router.Use(m.Middleware())             // Request metrics
	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.POST("/contracts/refresh", contractHandler.Refresh)
		protected.GET("/contracts", contractHandler.List)
		protected.GET("/contracts/stats", contractHandler.Stats)
		protected.GET("/contracts/:id", contractHandler.Get)
		protected.PUT("/contracts/filters", contractHandler.SetFilters)
		protected.DELETE("/contracts/filters", contractHandler.ResetFilters)
		protected.PUT("/contracts/page", contractHandler.SetPage)

		protected.GET("/reports/export", reportHandler.Export)

		protected.GET("/notifications", notificationHandler.List)
		protected.POST("/notifications", notificationHandler.Create)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)
		protected.DELETE("/notifications/:id", notificationHandler.Remove)
		protected.DELETE("/notifications", notificationHandler.Clear)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// newSource builds the configured contract source backend.
func newSource(cfg *config.Config) (service.ContractSource, error) {
	switch cfg.Source.Backend {
	case config.SourceMinio:
		src, err := service.NewMinioSource(&cfg.Minio)
		if err != nil {
			return nil, err
		}
		if err := src.EnsureBucket(context.Background()); err != nil {
			return nil, err
		}
		return src, nil
	case config.SourceHTTP:
		return service.NewHTTPSource(&cfg.Source), nil
	default:
		return nil, fmt.Errorf("unknown source backend: %s", cfg.Source.Backend)
	}
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
