package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grievance-map-go/internal/types"
)

func TestCentroid(t *testing.T) {
	records := []types.GrievanceRecord{
		{Lat: 20.0, Lng: 85.0},
		{Lat: 21.0, Lng: 86.0},
	}
	got := Centroid(records, Point{})
	assert.InDelta(t, 20.5, got.Lat, 1e-9)
	assert.InDelta(t, 85.5, got.Lng, 1e-9)
}

func TestCentroid_SingleRecord(t *testing.T) {
	got := Centroid([]types.GrievanceRecord{{Lat: 20.84, Lng: 85.56}}, Point{})
	assert.Equal(t, Point{Lat: 20.84, Lng: 85.56}, got)
}

func TestCentroid_EmptyFallsBack(t *testing.T) {
	fallback := Point{Lat: 20.6587, Lng: 85.5981}
	assert.Equal(t, fallback, Centroid(nil, fallback))
	assert.Equal(t, fallback, Centroid([]types.GrievanceRecord{}, fallback))
}
