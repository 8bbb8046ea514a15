package flood

import (
	"go.uber.org/zap"

	"github.com/storm-buster/jal-setu/internal/geometry"
	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/river"
)

// The engine does not clip centerlines against the AOI. A detected
// intersection reports a fixed "detected, unspecified extent" magnitude:
// 0.1 degrees scaled at 100 km per degree. Changing either constant changes
// the numbers downstream risk text reports.
const (
	detectedLengthDeg = 0.1
	headlineKmPerDeg  = 100.0
)

// IntersectionResult records one river touching the caller's AOI. Only
// intersecting rivers are reported, so IsIntersecting is always true on
// returned values; it is kept for wire compatibility.
type IntersectionResult struct {
	RiverName            string  `json:"river_name"`
	IntersectionLengthKm float64 `json:"intersection_length_km"`
	IsIntersecting       bool    `json:"is_intersecting"`
}

// FindIntersections reports which rivers of region intersect any of the
// given AOI rings. Rings with fewer than 3 points and rivers with fewer
// than 2 points are ignored. Each river appears at most once, in
// registration order. Unknown regions and empty input degrade to an empty
// result; this operation never fails.
func (e *Engine) FindIntersections(region model.Region, rings []geometry.Ring) []IntersectionResult {
	rivers := e.rivers.Rivers(region)
	results := make([]IntersectionResult, 0, len(rivers))
	if len(rivers) == 0 || len(rings) == 0 {
		return results
	}

	for _, riv := range rivers {
		if len(riv.Centerline) < 2 {
			continue
		}
		if !riverIntersects(riv, rings) {
			continue
		}
		zap.L().Debug("flood: river intersects aoi",
			zap.String("region", string(region)),
			zap.String("river", riv.Name),
		)
		results = append(results, IntersectionResult{
			RiverName:            riv.Name,
			IntersectionLengthKm: detectedLengthDeg * headlineKmPerDeg,
			IsIntersecting:       true,
		})
	}
	return results
}

// riverIntersects checks one river against every usable ring: bbox
// disjointness prunes first, then any centerline vertex inside the ring
// counts, then any proper edge crossing. Rings are scanned until the first
// hit.
func riverIntersects(riv river.Segment, rings []geometry.Ring) bool {
	riverBox := geometry.BoundingBox(riv.Centerline)

	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		if geometry.BoundingBox(ring).Disjoint(riverBox) {
			continue
		}

		for _, p := range riv.Centerline {
			if geometry.PointInPolygon(p, ring) {
				return true
			}
		}

		// The river may pass through the ring without a vertex landing
		// inside. Ring edges do not wrap: an unclosed ring's implicit
		// closing edge is not tested.
		for i := 0; i < len(riv.Centerline)-1; i++ {
			for j := 0; j < len(ring)-1; j++ {
				if geometry.SegmentsIntersect(riv.Centerline[i], riv.Centerline[i+1], ring[j], ring[j+1]) {
					return true
				}
			}
		}
	}
	return false
}
