package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"facility-reservation-backend/config"
	"facility-reservation-backend/internal/api"
	"facility-reservation-backend/internal/availability"
	"facility-reservation-backend/internal/booking"
	"facility-reservation-backend/internal/db"
	"facility-reservation-backend/internal/history"
	"facility-reservation-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "reservation-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the store layer instance
	appStore := store.NewGormStore(gormDB, cfg.Booking.StorageTimeout)
	logger.Println("data store initialized")

	// History writes are decoupled from the reservation path; start the
	// worker pool that drains them in the background.
	recorder := history.NewPool(cfg.Booking.HistoryWorkers, appStore)
	recorder.Start(ctx)

	bookingSvc := booking.NewService(appStore, recorder)
	availabilityQuery := availability.NewQuery(appStore)

	// Initialize router
	router := api.NewRouter(&cfg.Server, appStore, bookingSvc, availabilityQuery)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
