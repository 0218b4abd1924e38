package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance-map-go/internal/geo"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "block_name", cfg.BoundaryNameKey)
	assert.Equal(t, 3, cfg.Severity.LowMax)
	assert.Equal(t, 5, cfg.Severity.MediumMax)
	assert.Equal(t, geo.Point{Lat: 20.6587, Lng: 85.5981}, cfg.FallbackCenter)
	assert.Equal(t, 30*time.Second, cfg.RetryMaxElapsed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOUNDARY_NAME_KEY", "NAME_2")
	t.Setenv("SEVERITY_LOW_MAX", "1")
	t.Setenv("SEVERITY_MEDIUM_MAX", "2")
	t.Setenv("FALLBACK_CENTER_LAT", "12.97")
	t.Setenv("FALLBACK_CENTER_LNG", "77.59")
	t.Setenv("DATASET_RETRY_MAX_ELAPSED", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "NAME_2", cfg.BoundaryNameKey)
	assert.Equal(t, 1, cfg.Severity.LowMax)
	assert.Equal(t, 2, cfg.Severity.MediumMax)
	assert.InDelta(t, 12.97, cfg.FallbackCenter.Lat, 1e-9)
	assert.InDelta(t, 77.59, cfg.FallbackCenter.Lng, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.RetryMaxElapsed)
}

func TestLoad_UnparseableValueFallsBack(t *testing.T) {
	t.Setenv("SEVERITY_LOW_MAX", "lots")
	t.Setenv("FALLBACK_CENTER_LAT", "north")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Severity.LowMax)
	assert.InDelta(t, 20.6587, cfg.FallbackCenter.Lat, 1e-9)
}

func TestLoad_InconsistentSeverityBand(t *testing.T) {
	t.Setenv("SEVERITY_LOW_MAX", "10")
	t.Setenv("SEVERITY_MEDIUM_MAX", "5")

	_, err := Load()
	assert.Error(t, err)
}
