// Package model holds the domain types shared across the service: the
// region and scenario enumerations and the caller-facing AOI shapes.
package model

import (
	"github.com/rotisserie/eris"

	"github.com/storm-buster/jal-setu/internal/geometry"
)

// Region identifies one of the supported states.
type Region string

// Supported regions.
const (
	RegionBihar        Region = "Bihar"
	RegionUttarakhand  Region = "Uttarakhand"
	RegionJharkhand    Region = "Jharkhand"
	RegionUttarPradesh Region = "Uttar Pradesh"
)

// Regions returns all supported regions in a fixed order.
func Regions() []Region {
	return []Region{RegionBihar, RegionUttarakhand, RegionJharkhand, RegionUttarPradesh}
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	switch r {
	case RegionBihar, RegionUttarakhand, RegionJharkhand, RegionUttarPradesh:
		return true
	}
	return false
}

// ParseRegion validates a caller-supplied region name.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", eris.Errorf("model: unknown region %q", s)
	}
	return r, nil
}

// Scenario is a named flood-depth case driving buffer magnitude.
type Scenario string

// Supported flood scenarios.
const (
	Scenario0m Scenario = "0m"
	Scenario1m Scenario = "1m"
	Scenario2m Scenario = "2m"
)

// Scenarios returns all supported scenarios in increasing depth order.
func Scenarios() []Scenario {
	return []Scenario{Scenario0m, Scenario1m, Scenario2m}
}

// Valid reports whether s is one of the supported scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case Scenario0m, Scenario1m, Scenario2m:
		return true
	}
	return false
}

// ParseScenario validates a caller-supplied scenario name.
func ParseScenario(s string) (Scenario, error) {
	sc := Scenario(s)
	if !sc.Valid() {
		return "", eris.Errorf("model: unknown scenario %q", s)
	}
	return sc, nil
}

// PolygonAOI is a user-drawn area-of-interest polygon as supplied by map
// clients: a list of rings, each a list of [lon, lat] coordinate pairs.
// Rings are not required to be closed.
type PolygonAOI struct {
	Rings [][][]float64 `json:"rings"`
	WKID  *int          `json:"wkid,omitempty"`
}

// UploadedFile is metadata for a caller-uploaded raster dataset.
type UploadedFile struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bands  int    `json:"bands"`
	Size   int64  `json:"size"`
}

// Rings flattens the rings of all AOI polygons into geometry rings.
// Coordinates with fewer than two components are dropped; ring validity
// (at least 3 points) is left to the engine.
func Rings(polys []PolygonAOI) []geometry.Ring {
	var rings []geometry.Ring
	for _, poly := range polys {
		for _, raw := range poly.Rings {
			ring := make(geometry.Ring, 0, len(raw))
			for _, coord := range raw {
				if len(coord) < 2 {
					continue
				}
				ring = append(ring, geometry.Point{Lon: coord[0], Lat: coord[1]})
			}
			rings = append(rings, ring)
		}
	}
	return rings
}
