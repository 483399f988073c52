package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "moto-rental-backend/internal/api/http"
	"moto-rental-backend/internal/config"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/messaging"
	"moto-rental-backend/internal/pricing"
	"moto-rental-backend/internal/repository/postgres"
	"moto-rental-backend/internal/security"
	"moto-rental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional, real deployments set environment variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Moto Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Redis configuration", "addr", cfg.Redis.Addr, "channel", cfg.Redis.MotoRegisteredChannel)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Redis broker
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to ping redis", "error", err)
		log.Fatalf("Failed to ping redis: %v", err)
	}
	logger.Info("Redis connection established")

	broker := messaging.NewRedisBroker(rdb)

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security. An empty secret leaves the API open, which is
	// the local development default.
	var tokenManager security.TokenManager
	if cfg.JWT.Secret != "" {
		tokenManager = security.NewTokenManager(cfg.JWT.Secret)
	} else {
		logger.Warn("JWT secret not configured, API is running open")
	}

	// Initialize Pricing
	catalog := pricing.DefaultCatalog()
	engine := pricing.NewEngine(catalog)
	gate := service.NewEligibilityGate(catalog, store.DriverRepository, store.MotoRepository)

	// Initialize Services
	driverSvc := service.NewDriverService(store.DriverRepository)
	motoSvc := service.NewMotoService(store.MotoRepository, broker, cfg.Redis.MotoRegisteredChannel)
	rentalSvc := service.NewRentalService(store.RentalRepository, gate, engine, catalog)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Consume motorcycle registration events into notifications
	go func() {
		handle := func(ctx context.Context, payload []byte) error {
			event, err := messaging.DecodeMotoRegistered(payload)
			if err != nil {
				return err
			}
			return noteSvc.RecordMotoRegistered(ctx, event)
		}
		if err := broker.StartConsuming(ctx, cfg.Redis.MotoRegisteredChannel, handle); err != nil {
			logger.Error("Moto registration consumer stopped", "error", err)
		}
	}()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Handlers{
		Plans:         httpapi.NewPlanHandler(catalog),
		Motos:         httpapi.NewMotoHandler(motoSvc),
		Drivers:       httpapi.NewDriverHandler(driverSvc),
		Rentals:       httpapi.NewRentalHandler(rentalSvc),
		Notifications: httpapi.NewNotificationHandler(noteSvc),
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	cancel()
	logger.Info("Server stopped. Goodbye!")
}
