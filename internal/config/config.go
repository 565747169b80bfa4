package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelvins/geocoder"
)

// Default bounds for the station elevation, in meters. Anything outside is
// rejected at load time rather than fed into pressure corrections.
const (
	DefaultElevationMinM = -500.0
	DefaultElevationMaxM = 9000.0
)

// ElevationTooLowError reports an elevation below the configured minimum.
type ElevationTooLowError struct {
	ValueM float64
	MinM   float64
}

func (e *ElevationTooLowError) Error() string {
	return fmt.Sprintf("station elevation %gm is below the minimum %gm", e.ValueM, e.MinM)
}

// ElevationTooHighError reports an elevation above the configured maximum.
type ElevationTooHighError struct {
	ValueM float64
	MaxM   float64
}

func (e *ElevationTooHighError) Error() string {
	return fmt.Sprintf("station elevation %gm is above the maximum %gm", e.ValueM, e.MaxM)
}

// ValidateElevation accepts an elevation within [minM, maxM] unchanged and
// rejects anything outside with an error identifying the violated bound.
// It has no side effects on the rest of the configuration.
func ValidateElevation(valueM, minM, maxM float64) error {
	if valueM < minM {
		return &ElevationTooLowError{ValueM: valueM, MinM: minM}
	}
	if valueM > maxM {
		return &ElevationTooHighError{ValueM: valueM, MaxM: maxM}
	}
	return nil
}

// AppConfig is the process configuration.
type AppConfig struct {
	Port string

	// Station identity and placement.
	StationName     string
	StationURL      string
	StationLatitude *float64
	ElevationM      float64

	// PollInterval controls how often the sensor source is polled.
	PollInterval time.Duration

	// Outbound HTTP client timeout for the sensor source.
	HTTPTimeout time.Duration

	// In-memory store retention.
	StoreMaxHistory int           // max number of snapshots (0 = unlimited)
	StoreMaxAge     time.Duration // max age of snapshots (0 = unlimited)

	GeocoderAPIKey string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.StationName = getenvDefault("STATION_NAME", "local")
	cfg.StationURL = os.Getenv("STATION_URL")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	intervalStr := getenvDefault("POLL_INTERVAL", "10m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
	}
	cfg.PollInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 144) // roughly 24h at 10-minute intervals

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	elevation, err := loadElevation()
	if err != nil {
		return nil, err
	}
	cfg.ElevationM = elevation

	cfg.StationLatitude = loadLatitude(cfg.GeocoderAPIKey)

	return cfg, nil
}

// loadElevation reads and validates STATION_ELEVATION_M against the
// configured (or default) bounds.
func loadElevation() (float64, error) {
	raw := getenvDefault("STATION_ELEVATION_M", "0")
	elevation, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid STATION_ELEVATION_M: %w", err)
	}

	minM := getenvFloat("STATION_ELEVATION_MIN_M", DefaultElevationMinM)
	maxM := getenvFloat("STATION_ELEVATION_MAX_M", DefaultElevationMaxM)

	if err := ValidateElevation(elevation, minM, maxM); err != nil {
		return 0, err
	}
	return elevation, nil
}

// loadLatitude resolves the station latitude. A direct STATION_LATITUDE
// wins; otherwise the station city/country is geocoded when an API key is
// available. Latitude is optional, so failures only log.
func loadLatitude(geocoderAPIKey string) *float64 {
	if raw := os.Getenv("STATION_LATITUDE"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("INFO: invalid STATION_LATITUDE %q, ignoring: %v", raw, err)
			return nil
		}
		return &lat
	}

	city := os.Getenv("STATION_CITY")
	country := os.Getenv("STATION_COUNTRY")
	if city == "" || geocoderAPIKey == "" {
		return nil
	}

	geocoder.ApiKey = geocoderAPIKey
	location, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		Country: country,
	})
	if err != nil {
		log.Printf("INFO: geocoding %s,%s failed, continuing without latitude: %v", city, country, err)
		return nil
	}
	return &location.Latitude
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
