package dataset

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"

	"grievance-map-go/internal/logger"
	"grievance-map-go/internal/types"
)

// LoadBoundaries reads the administrative-boundary GeoJSON file.
func LoadBoundaries(path string) ([]types.BoundaryFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundaries: %w", err)
	}
	return ParseBoundaries(data), nil
}

// ParseBoundaries decodes a GeoJSON FeatureCollection into boundary
// features. A malformed payload is not fatal: it degrades to an empty
// feature set with a warning, and aggregation proceeds from grievance
// records alone.
func ParseBoundaries(data []byte) []types.BoundaryFeature {
	log := logger.New().WithComponent("dataset.boundaries")
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		log.WithError(err).Warn("malformed boundary collection, proceeding without features")
		return nil
	}
	out := make([]types.BoundaryFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		out = append(out, types.BoundaryFeature{
			Geometry:   f.Geometry,
			Properties: f.Properties,
		})
	}
	log.WithField("features", len(out)).Info("boundary dataset loaded")
	return out
}
