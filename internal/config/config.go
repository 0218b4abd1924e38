package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"grievance-map-go/internal/geo"
	"grievance-map-go/internal/logger"
	"grievance-map-go/internal/severity"
)

// Config holds all application configuration
type Config struct {
	Port            string
	GrievancePath   string
	BoundaryPath    string
	BoundaryNameKey string
	Severity        severity.Thresholds
	FallbackCenter  geo.Point
	RetryMaxElapsed time.Duration
}

// Load reads configuration from the environment. main calls
// godotenv.Load first so a local .env participates. Unparseable values
// fall back to their defaults with a warning; only an inconsistent
// severity band is a hard error.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		GrievancePath:   getEnv("GRIEVANCE_PATH", "data/grievances.xlsx"),
		BoundaryPath:    getEnv("BOUNDARY_PATH", "data/blocks.geojson"),
		BoundaryNameKey: getEnv("BOUNDARY_NAME_KEY", "block_name"),
		Severity: severity.Thresholds{
			LowMax:    getEnvInt("SEVERITY_LOW_MAX", severity.DefaultThresholds.LowMax),
			MediumMax: getEnvInt("SEVERITY_MEDIUM_MAX", severity.DefaultThresholds.MediumMax),
		},
		FallbackCenter: geo.Point{
			Lat: getEnvFloat("FALLBACK_CENTER_LAT", 20.6587),
			Lng: getEnvFloat("FALLBACK_CENTER_LNG", 85.5981),
		},
		RetryMaxElapsed: getEnvDuration("DATASET_RETRY_MAX_ELAPSED", 30*time.Second),
	}
	if cfg.Severity.MediumMax < cfg.Severity.LowMax {
		return Config{}, fmt.Errorf("SEVERITY_MEDIUM_MAX (%d) below SEVERITY_LOW_MAX (%d)",
			cfg.Severity.MediumMax, cfg.Severity.LowMax)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		warnInvalid(key, v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		warnInvalid(key, v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		warnInvalid(key, v)
		return fallback
	}
	return d
}

func warnInvalid(key, value string) {
	logger.New().WithComponent("config").
		WithField(key, value).Warn("unparseable value, using default")
}
