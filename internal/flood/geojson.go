package flood

import "github.com/twpayne/go-geom"

// The structs below pin the exact GeoJSON wire shape map clients render.
// Serializing through them (rather than a generic encoder) guarantees
// "features" is always an array and every geometry carries a "coordinates"
// key, even when empty.

// Geometry is a GeoJSON Polygon: a list holding exactly one closed ring of
// [lon, lat] pairs, or no rings at all.
type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][]geom.Coord `json:"coordinates"`
}

// Feature pairs a corridor geometry with its properties (river name,
// buffer distance, flood-prone flag, river width, scenario, region).
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is the cacheable aggregate served for one
// (region, scenario) pair.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection returns an empty collection whose Features slice is
// non-nil, so it serializes as [] rather than null.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}
