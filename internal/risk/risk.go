// Package risk holds the regional flood-risk tables and the AOI-aware
// scaling applied to them. Numbers here are headline estimates for
// dashboards and reports, not hydrological model output.
package risk

import (
	"fmt"
	"math"

	"github.com/storm-buster/jal-setu/internal/model"
)

// Summary describes headline flood risk for one region and scenario.
// JSON field names match what the map frontend renders.
type Summary struct {
	AreaKm2          int     `json:"area"`
	Population       int     `json:"population"`
	RiskScore        float64 `json:"riskScore"`
	EmbankmentStatus string  `json:"embankmentStatus"`
}

// Classification thresholds over the 0-10 risk score.
const (
	criticalThreshold = 8.0
	highThreshold     = 6.0
	moderateThreshold = 4.0
)

// Classification buckets a risk score into Critical/High/Moderate/Low.
func Classification(score float64) string {
	switch {
	case score >= criticalThreshold:
		return "Critical"
	case score >= highThreshold:
		return "High"
	case score >= moderateThreshold:
		return "Moderate"
	default:
		return "Low"
	}
}

// baseSummaries is the static region x scenario risk table.
var baseSummaries = map[model.Region]map[model.Scenario]Summary{
	model.RegionBihar: {
		model.Scenario0m: {AreaKm2: 0, Population: 0, RiskScore: 0.0, EmbankmentStatus: "Normal"},
		model.Scenario1m: {AreaKm2: 850, Population: 1_100_000, RiskScore: 6.2, EmbankmentStatus: "Stable"},
		model.Scenario2m: {AreaKm2: 1240, Population: 2_400_000, RiskScore: 8.4, EmbankmentStatus: "Critical"},
	},
	model.RegionUttarakhand: {
		model.Scenario0m: {AreaKm2: 0, Population: 0, RiskScore: 0.0, EmbankmentStatus: "Normal"},
		model.Scenario1m: {AreaKm2: 210, Population: 300_000, RiskScore: 4.5, EmbankmentStatus: "Stable"},
		model.Scenario2m: {AreaKm2: 420, Population: 800_000, RiskScore: 7.1, EmbankmentStatus: "Monitor"},
	},
	model.RegionJharkhand: {
		model.Scenario0m: {AreaKm2: 0, Population: 0, RiskScore: 0.0, EmbankmentStatus: "Normal"},
		model.Scenario1m: {AreaKm2: 430, Population: 650_000, RiskScore: 5.3, EmbankmentStatus: "Stable"},
		model.Scenario2m: {AreaKm2: 780, Population: 1_450_000, RiskScore: 7.6, EmbankmentStatus: "Monitor"},
	},
	model.RegionUttarPradesh: {
		model.Scenario0m: {AreaKm2: 0, Population: 0, RiskScore: 0.0, EmbankmentStatus: "Normal"},
		model.Scenario1m: {AreaKm2: 1120, Population: 2_050_000, RiskScore: 6.7, EmbankmentStatus: "Stable"},
		model.Scenario2m: {AreaKm2: 1680, Population: 4_300_000, RiskScore: 8.1, EmbankmentStatus: "Critical"},
	},
}

// regionAreaKm2 holds rough reference areas used to scale statewide
// numbers down to a drawn AOI.
var regionAreaKm2 = map[model.Region]float64{
	model.RegionBihar:        1000.0,
	model.RegionUttarakhand:  500.0,
	model.RegionJharkhand:    800.0,
	model.RegionUttarPradesh: 1800.0,
}

// BaseSummary returns the statewide summary for a region and scenario.
// Unknown combinations yield the zero Summary.
func BaseSummary(region model.Region, scenario model.Scenario) Summary {
	return baseSummaries[region][scenario]
}

// AOIBBoxAreaKm2 estimates the area covered by the AOI polygons from the
// bounding box of all their rings, with the km-per-degree of longitude
// corrected by the box's mid latitude.
func AOIBBoxAreaKm2(polys []model.PolygonAOI) float64 {
	var lons, lats []float64
	for _, poly := range polys {
		for _, ring := range poly.Rings {
			for _, coord := range ring {
				if len(coord) < 2 {
					continue
				}
				lons = append(lons, coord[0])
				lats = append(lats, coord[1])
			}
		}
	}
	if len(lons) == 0 {
		return 0
	}

	minLon, maxLon := lons[0], lons[0]
	for _, v := range lons[1:] {
		minLon = math.Min(minLon, v)
		maxLon = math.Max(maxLon, v)
	}
	minLat, maxLat := lats[0], lats[0]
	for _, v := range lats[1:] {
		minLat = math.Min(minLat, v)
		maxLat = math.Max(maxLat, v)
	}

	midLat := (minLat + maxLat) / 2.0
	kmPerDegLat := 111.0
	kmPerDegLon := 111.0 * math.Max(0.1, math.Abs(math.Cos(midLat*math.Pi/180.0)))

	widthKm := math.Max(0, (maxLon-minLon)*kmPerDegLon)
	heightKm := math.Max(0, (maxLat-minLat)*kmPerDegLat)
	return widthKm * heightKm
}

// ApplyAOIScale scales a statewide summary down to a drawn AOI. The scale
// is the AOI bbox area over the region reference area, clamped to
// [0.03, 1.0]; the risk score gets a small AOI-size nudge and is clamped
// to [0, 10] with the embankment status reclassified from the result.
// Without an AOI (or with a degenerate one) the base summary is returned
// unchanged.
func ApplyAOIScale(region model.Region, base Summary, aoi []model.PolygonAOI) Summary {
	if len(aoi) == 0 {
		return base
	}
	aoiArea := AOIBBoxAreaKm2(aoi)
	if aoiArea <= 0 {
		return base
	}
	refArea := regionAreaKm2[region]
	if refArea <= 0 {
		return base
	}

	scale := math.Min(1.0, math.Max(0.03, aoiArea/refArea))

	score := base.RiskScore + (scale-0.25)*0.8
	score = math.Max(0.0, math.Min(10.0, score))
	score = math.Round(score*100) / 100

	return Summary{
		AreaKm2:          int(math.Round(float64(base.AreaKm2) * scale)),
		Population:       int(math.Round(float64(base.Population) * scale)),
		RiskScore:        score,
		EmbankmentStatus: Classification(score),
	}
}

// FeatureImportance is one bar of the model-explanation chart.
type FeatureImportance struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
	Fill       string  `json:"fill"`
}

// FeatureImportances returns the fixed explanation chart for the risk
// model.
func FeatureImportances() []FeatureImportance {
	return []FeatureImportance{
		{Name: "Elevation", Importance: 0.85, Fill: "#1f4e79"},
		{Name: "Rainfall", Importance: 0.72, Fill: "#2e75b6"},
		{Name: "Soil Type", Importance: 0.54, Fill: "#6fa8dc"},
		{Name: "Land Use", Importance: 0.45, Fill: "#9fc5e8"},
		{Name: "Slopes", Importance: 0.30, Fill: "#cfe2f3"},
	}
}

// ImpactItem is one bar of the scenario comparison chart. Risk carries
// population in millions for chart readability.
type ImpactItem struct {
	Name    string  `json:"name"`
	AreaKm2 int     `json:"area"`
	Risk    float64 `json:"risk"`
}

// ImpactComparison compares the 1m and 2m scenarios for the drawn AOI and
// for the whole state.
func ImpactComparison(region model.Region, aoi []model.PolygonAOI) []ImpactItem {
	item := func(scenario model.Scenario, aoi []model.PolygonAOI) ImpactItem {
		scaled := ApplyAOIScale(region, BaseSummary(region, scenario), aoi)
		return ImpactItem{
			Name:    fmt.Sprintf("%s +%s", region, scenario),
			AreaKm2: scaled.AreaKm2,
			Risk:    math.Round(float64(scaled.Population)/1_000_000*100) / 100,
		}
	}
	return []ImpactItem{
		item(model.Scenario1m, aoi),
		item(model.Scenario2m, aoi),
		item(model.Scenario1m, nil),
		item(model.Scenario2m, nil),
	}
}

// terrainBaseM holds representative base elevations (meters) per region.
var terrainBaseM = map[model.Region]int{
	model.RegionBihar:        120,
	model.RegionUttarakhand:  650,
	model.RegionJharkhand:    180,
	model.RegionUttarPradesh: 110,
}

// TerrainProfile returns a deterministic 40-sample elevation profile for a
// region. Placeholder values until a real DEM source is wired.
func TerrainProfile(region model.Region) []int {
	base := terrainBaseM[region]
	profile := make([]int, 40)
	for i := range profile {
		profile[i] = base + (i%9)*7 - (i%5)*4
	}
	return profile
}
