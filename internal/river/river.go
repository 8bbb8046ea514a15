// Package river holds the static river-centerline networks and the
// registry that serves them to the flood engine.
package river

import (
	"github.com/storm-buster/jal-setu/internal/geometry"
	"github.com/storm-buster/jal-setu/internal/model"
)

// Segment is a named river centerline with metadata. Segments are built
// once at startup and never mutated afterwards.
type Segment struct {
	Name       string
	Centerline []geometry.Point // ordered lon/lat points, at least 2 for a usable river
	AvgWidthM  float64
	FloodProne bool
}

// Registry maps regions to their registered river segments. It is
// read-only for the process lifetime, so concurrent reads need no
// synchronization.
type Registry struct {
	networks map[model.Region][]Segment
}

// NewRegistry builds a registry from the given networks. The map and its
// slices are copied so later mutation of the argument cannot leak in.
func NewRegistry(networks map[model.Region][]Segment) *Registry {
	copied := make(map[model.Region][]Segment, len(networks))
	for region, segments := range networks {
		copied[region] = append([]Segment(nil), segments...)
	}
	return &Registry{networks: copied}
}

// Rivers returns the segments registered for region, in registration
// order. Unknown regions yield nil rather than an error.
func (r *Registry) Rivers(region model.Region) []Segment {
	return r.networks[region]
}

// Regions returns the regions that have at least one registered river.
func (r *Registry) Regions() []model.Region {
	var regions []model.Region
	for _, region := range model.Regions() {
		if len(r.networks[region]) > 0 {
			regions = append(regions, region)
		}
	}
	return regions
}
