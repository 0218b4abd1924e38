package types

import "github.com/paulmach/orb"

// GrievanceRecord is one citizen-reported complaint exactly as the
// upstream dataset supplies it. Never mutated after load.
type GrievanceRecord struct {
	ID        int     `json:"id"`
	Block     string  `json:"block"`
	Grievance string  `json:"grievance"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// BoundaryFeature is one administrative region from the boundary
// dataset: its polygon geometry plus the raw properties map. The
// statistics core never inspects the geometry; it is carried through
// untouched for the rendering layer.
type BoundaryFeature struct {
	Geometry   orb.Geometry           `json:"-"`
	Properties map[string]interface{} `json:"properties"`
}

// Name returns the raw region name stored under the given property
// key, or "" when the property is absent or not a string.
func (f BoundaryFeature) Name(key string) string {
	v, ok := f.Properties[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RegionStats is one row of the aggregated per-region table. Key is
// the normalized join key, Label the display name, Records the
// complaints mapped to this region in input order. Total always equals
// len(Records).
type RegionStats struct {
	Key     string            `json:"key"`
	Label   string            `json:"label"`
	Total   int               `json:"total"`
	Records []GrievanceRecord `json:"records"`
}
