package main

import (
	"context"   // Shutdown contexts and Redis ping
	"errors"    // http.ErrServerClosed check
	"net/http"  // HTTP server
	"os/signal" // Shutdown signal handling
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"ledger_system/internal/api"    // Custom package for API handlers
	"ledger_system/internal/config" // Custom package for configuration
	"ledger_system/internal/db"     // Custom package for database access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database and tune the connection pool
	database, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	sqlDB, err := database.DB() // Underlying sql.DB for ping and teardown
	if err != nil {
		logrus.Fatalf("failed to access DB pool: %v", err)
	}
	// Verify connectivity before serving
	if err := sqlDB.Ping(); err != nil {
		logrus.Fatalf("failed to ping DB: %v", err)
	}
	// Ensure the schema exists
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := api.NewRouter(database, redisClient) // Router with all routes wired

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r} // HTTP server wrapping the router

	// Serve in the background so the main goroutine can wait for signals
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("Shutdown signal received, draining connections")
	// Give in-flight requests a grace period to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}
	// Close the shared resources once no requests remain
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("closing DB pool: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		logrus.Errorf("closing Redis client: %v", err)
	}
	logrus.Info("Shutdown complete")
}
