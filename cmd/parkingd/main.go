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

	"github.com/patrickmn/go-cache"

	"parking-lot-backend/config"
	"parking-lot-backend/internal/api"
	"parking-lot-backend/internal/db"
	"parking-lot-backend/internal/model"
	"parking-lot-backend/internal/monitor"
	"parking-lot-backend/internal/parking"
	"parking-lot-backend/internal/persist"
	"parking-lot-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "parking-backend ", log.LstdFlags)

	// Load configuration; a missing config file falls back to defaults so
	// the tool runs out of the box on a single device.
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		logger.Printf("no configuration at %s, using defaults", configPath)
		cfg = config.Default()
	} else {
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	// Initialize the snapshot database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	appStore := store.NewGormStore(gormDB)

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the last snapshot, or start fresh with configured defaults.
	engine, err := loadEngine(ctx, appStore, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to initialize parking engine: %v", err)
	}

	// Background snapshot writer: handlers dispatch the full state after
	// every mutation, the writer persists the latest one.
	writer := persist.NewWriter(appStore)
	go writer.Run(ctx)

	// Live-duration monitor
	liveCache := cache.New(cache.NoExpiration, 10*time.Minute)
	if cfg.Monitor.Enabled {
		monitorSvc := monitor.NewService(engine, liveCache, cfg.Monitor.Interval)
		go monitorSvc.Run(ctx)
	}

	// Initialize router
	router := api.NewRouter(engine, writer, liveCache, api.RouterOptions{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		CacheTTL:        time.Duration(cfg.Server.CacheTTLSeconds) * time.Second,
	})
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

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	// Persist whatever is still pending before exiting.
	if err := writer.Flush(shutdownCtx); err != nil {
		logger.Printf("final snapshot flush failed: %v", err)
	}

	logger.Println("Server gracefully stopped")
}

// loadEngine restores the engine from the persisted snapshot, or creates a
// fresh one with default settings when no snapshot exists yet.
func loadEngine(ctx context.Context, st store.Store, cfg *config.Config, logger *log.Logger) (*parking.Engine, error) {
	snap, found, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		engine, err := parking.Restore(snap)
		if err != nil {
			return nil, err
		}
		logger.Printf("restored snapshot: %d slots, %d active sessions, %d history entries",
			len(snap.Slots), len(snap.Sessions), len(snap.History))
		return engine, nil
	}

	engine, err := parking.NewEngine(model.Settings{
		SlotCount:  cfg.Parking.DefaultSlotCount,
		HourlyRate: cfg.Parking.DefaultHourlyRate,
	})
	if err != nil {
		return nil, err
	}
	logger.Printf("no snapshot found, starting fresh with %d slots at rate %.2f",
		cfg.Parking.DefaultSlotCount, cfg.Parking.DefaultHourlyRate)
	if err := st.Save(ctx, engine.Snapshot()); err != nil {
		logger.Printf("initial snapshot save failed, in-memory state remains authoritative: %v", err)
	}
	return engine, nil
}
