// Package geometry implements the planar primitives behind the flood
// engine: ray-casting point-in-polygon, orientation-based segment crossing,
// and bounding boxes. Coordinates are lon/lat degrees treated as locally
// Euclidean; nothing here is geodesically correct.
package geometry

import "math"

// Point is a lon/lat coordinate pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Ring is an ordered polygon boundary. Closure (last point equal to the
// first) is tolerated but not required.
type Ring []Point

// BBox is an axis-aligned bounding box in lon/lat degrees.
type BBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// BoundingBox returns the bbox of the given points. The zero BBox is
// returned for an empty slice.
func BoundingBox(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	b := BBox{MinLon: pts[0].Lon, MinLat: pts[0].Lat, MaxLon: pts[0].Lon, MaxLat: pts[0].Lat}
	for _, p := range pts[1:] {
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
	}
	return b
}

// Disjoint reports whether the two boxes share no area. It is a cheap
// pre-filter only; overlapping boxes say nothing about the geometries inside.
func (b BBox) Disjoint(o BBox) bool {
	return o.MaxLon < b.MinLon || o.MinLon > b.MaxLon ||
		o.MaxLat < b.MinLat || o.MinLat > b.MaxLat
}

// PointInPolygon reports whether p lies inside ring using a horizontal
// ray cast. The vertical test is half-open (min < lat <= max) so shared
// vertices are not double counted, and perfectly horizontal edges register
// no crossing at all. A point lying exactly on a horizontal edge is
// therefore classified by the remaining edges only, which usually means
// outside; boundary points carry no guarantee either way. Rings with fewer
// than 3 points are never hit.
func PointInPolygon(p Point, ring Ring) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	n := len(ring)
	p1 := ring[0]
	for i := 1; i <= n; i++ {
		p2 := ring[i%n]
		if p1.Lat != p2.Lat &&
			p.Lat > math.Min(p1.Lat, p2.Lat) &&
			p.Lat <= math.Max(p1.Lat, p2.Lat) &&
			p.Lon <= math.Max(p1.Lon, p2.Lon) {
			xint := (p.Lat-p1.Lat)*(p2.Lon-p1.Lon)/(p2.Lat-p1.Lat) + p1.Lon
			if p1.Lon == p2.Lon || p.Lon <= xint {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// SegmentsIntersect reports whether segment a1-a2 crosses b1-b2 by
// comparing orientation signs. Collinear configurations and touches at a
// shared endpoint are never detected; an endpoint lying in the interior of
// the other segment may or may not register, depending on which side the
// remaining endpoint falls. Callers that care about those boundary cases
// must handle them separately.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	return ccw(a1, b1, b2) != ccw(a2, b1, b2) && ccw(a1, a2, b1) != ccw(a1, a2, b2)
}

// ccw reports whether the triple (a, b, c) winds counter-clockwise.
func ccw(a, b, c Point) bool {
	return (c.Lat-a.Lat)*(b.Lon-a.Lon) > (b.Lat-a.Lat)*(c.Lon-a.Lon)
}
