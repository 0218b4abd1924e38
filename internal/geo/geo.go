package geo

import "grievance-map-go/internal/types"

// Point is a WGS 84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Centroid returns the arithmetic mean of all record coordinates,
// latitudes and longitudes averaged independently. It picks the
// initial viewing center only, so no projection correction is applied.
// An empty input yields the configured fallback point.
func Centroid(records []types.GrievanceRecord, fallback Point) Point {
	if len(records) == 0 {
		return fallback
	}
	var sumLat, sumLng float64
	for _, r := range records {
		sumLat += r.Lat
		sumLng += r.Lng
	}
	n := float64(len(records))
	return Point{Lat: sumLat / n, Lng: sumLng / n}
}
