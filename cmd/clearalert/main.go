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

	httpapi "github.com/Arshya-tech/ClearAlert/internal/api/http"
	"github.com/Arshya-tech/ClearAlert/internal/alert"
	"github.com/Arshya-tech/ClearAlert/internal/alert/sources"
	"github.com/Arshya-tech/ClearAlert/internal/config"
	"github.com/Arshya-tech/ClearAlert/internal/geocode"
	"github.com/Arshya-tech/ClearAlert/internal/guide"
	"github.com/Arshya-tech/ClearAlert/internal/scheduler"
	"github.com/Arshya-tech/ClearAlert/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Geocoder and the three source adapters.
	resolver := geocode.NewClient(httpClient, cfg.NominatimBaseURL, cfg.UserAgent)
	gdacs := sources.NewGDACSSource(httpClient, cfg.GDACSFeedURL, cfg.UserAgent)
	national := map[string]alert.Source{
		"US": sources.NewNWSSource(httpClient, cfg.NWSBaseURL, cfg.UserAgent),
		"CA": sources.NewCanadaSource(httpClient, cfg.CanadaBaseURL, cfg.UserAgent),
	}

	// Core service orchestrating geocoding, sources, dedup and sort.
	service := alert.NewService(resolver, gdacs, national)

	// In-memory snapshot/settings store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxAge)

	// Background refresh for watched locations.
	sched := scheduler.New(cfg.WatchLocations, cfg.FetchInterval, service, memStore)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// LLM guidance boundary with static fallback.
	guideClient := guide.NewClient(httpClient, cfg.GeminiBaseURL, cfg.GeminiAPIKey)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "clearalert",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
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
			"service": "clearalert",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Alerts: service,
		Store:  memStore,
		Guide:  guideClient,
	})

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
