package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration, read from environment.
type AppConfig struct {
	Port        string
	HTTPTimeout time.Duration

	// UserAgent identifies outbound requests per upstream usage policies.
	UserAgent string

	// Upstream base URL overrides; empty means the public endpoint. These
	// exist mainly so tests can point adapters at local servers.
	NominatimBaseURL string
	NWSBaseURL       string
	CanadaBaseURL    string
	GDACSFeedURL     string
	GeminiBaseURL    string

	GeminiAPIKey string

	// WatchLocations are refreshed in the background so cached snapshots
	// stay warm. May be empty.
	WatchLocations []string
	FetchInterval  time.Duration

	// StoreMaxAge bounds how stale a cached snapshot may be served.
	StoreMaxAge time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:             getenvDefault("PORT", "8080"),
		UserAgent:        getenvDefault("USER_AGENT", "ClearAlert Emergency App (contact@clearalert.app)"),
		NominatimBaseURL: os.Getenv("NOMINATIM_BASE_URL"),
		NWSBaseURL:       os.Getenv("NWS_BASE_URL"),
		CanadaBaseURL:    os.Getenv("CANADA_BASE_URL"),
		GDACSFeedURL:     os.Getenv("GDACS_FEED_URL"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
	}

	timeout, err := parseDuration("HTTP_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	interval, err := parseDuration("FETCH_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.FetchInterval = interval

	maxAge, err := parseDuration("STORE_MAX_AGE", "24h")
	if err != nil {
		return nil, err
	}
	cfg.StoreMaxAge = maxAge

	if raw := os.Getenv("WATCH_LOCATIONS"); raw != "" {
		for _, loc := range strings.Split(raw, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				cfg.WatchLocations = append(cfg.WatchLocations, loc)
			}
		}
	}

	return cfg, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	raw := getenvDefault(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
