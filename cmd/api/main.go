package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"category-api/internal/config"
	"category-api/internal/database"
	"category-api/internal/handlers"
	"category-api/internal/repository"
	"category-api/internal/routes"
	"category-api/internal/services"
)

func main() {
	// STEP 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// STEP 2: Set Up Logging
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// STEP 3: Initialize Database Connection Pool
	dbPool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	// defer ensures this runs when main() exits, cleaning up resources
	defer dbPool.Close()

	if err := database.Migrate(context.Background(), dbPool); err != nil {
		logger.Fatalf("Failed to apply schema: %v", err)
	}
	logger.Info("Database connection established")

	// STEP 4: Initialize Application Layers (Dependency Injection)
	// Repository (data access) -> service (business logic) -> handler (HTTP)
	categoryRepo := repository.NewCategoryRepository(dbPool, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// STEP 5: Setup Router and Routes
	router := routes.NewRouter(cfg, logger, categoryHandler)

	// STEP 6: Create HTTP Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port, // e.g., ":8080"
		Handler: router,
		// Timeouts prevent slow clients from holding connections indefinitely
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		// ListenAndServe blocks until the server stops
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// STEP 7: Graceful Shutdown
	// SIGINT = Ctrl+C, SIGTERM = kill command or container orchestrator
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until we receive a signal

	logger.Info("Shutting down server...")

	// Give in-flight requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited gracefully")
}
