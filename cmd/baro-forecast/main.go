package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/baro-forecast/internal/api/http"
	"github.com/i474232898/baro-forecast/internal/config"
	"github.com/i474232898/baro-forecast/internal/forecast"
	"github.com/i474232898/baro-forecast/internal/scheduler"
	"github.com/i474232898/baro-forecast/internal/station"
	"github.com/i474232898/baro-forecast/internal/station/sensors"
	"github.com/i474232898/baro-forecast/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration. Elevation bounds are enforced here; an invalid
	// station elevation is a startup failure, not a degraded forecast.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for the sensor source.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Sensor source with resilience (backoff + circuit breaker).
	var source station.Source
	if cfg.StationURL != "" {
		source = sensors.NewHTTPStationSource(httpClient, cfg.StationURL)
	} else {
		log.Printf("INFO: no STATION_URL configured; forecasts only via POST /api/v1/forecast")
	}

	// Core service wiring the engine, source and store together.
	engine := forecast.NewEngineAt(cfg.ElevationM)
	service := station.NewService(cfg.StationName, cfg.StationLatitude, source, engine, memStore)

	// Scheduler that periodically polls the sensor and recomputes.
	if source != nil {
		sched := scheduler.New(cfg.PollInterval, service)
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "baro-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "baro-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
