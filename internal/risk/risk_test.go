package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storm-buster/jal-setu/internal/model"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.5, "Critical"},
		{8.0, "Critical"},
		{7.9, "High"},
		{6.0, "High"},
		{5.0, "Moderate"},
		{4.0, "Moderate"},
		{3.9, "Low"},
		{0.0, "Low"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classification(tt.score), "score %v", tt.score)
	}
}

func TestBaseSummary(t *testing.T) {
	s := BaseSummary(model.RegionBihar, model.Scenario2m)
	assert.Equal(t, 1240, s.AreaKm2)
	assert.Equal(t, 2_400_000, s.Population)
	assert.InDelta(t, 8.4, s.RiskScore, 1e-9)
	assert.Equal(t, "Critical", s.EmbankmentStatus)

	// 0m is always a quiet baseline.
	for _, region := range model.Regions() {
		zero := BaseSummary(region, model.Scenario0m)
		assert.Zero(t, zero.AreaKm2)
		assert.Equal(t, "Normal", zero.EmbankmentStatus)
	}

	assert.Zero(t, BaseSummary(model.Region("Atlantis"), model.Scenario1m))
}

func aoiBox(minLon, minLat, maxLon, maxLat float64) model.PolygonAOI {
	return model.PolygonAOI{Rings: [][][]float64{{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat},
	}}}
}

func TestAOIBBoxAreaKm2(t *testing.T) {
	// 1x1 degree box at the equator: ~111 km x 111 km.
	area := AOIBBoxAreaKm2([]model.PolygonAOI{aoiBox(0, -0.5, 1, 0.5)})
	assert.InDelta(t, 111.0*111.0, area, 30.0)

	// The same box at 60N covers roughly half the longitude distance.
	north := AOIBBoxAreaKm2([]model.PolygonAOI{aoiBox(0, 59.5, 1, 60.5)})
	assert.Less(t, north, area*0.6)

	assert.Zero(t, AOIBBoxAreaKm2(nil))
	assert.Zero(t, AOIBBoxAreaKm2([]model.PolygonAOI{{Rings: [][][]float64{{{1}}}}}))
}

func TestApplyAOIScale_NoAOIPassthrough(t *testing.T) {
	base := BaseSummary(model.RegionBihar, model.Scenario1m)

	assert.Equal(t, base, ApplyAOIScale(model.RegionBihar, base, nil))
	// Degenerate AOI with no usable coordinates.
	assert.Equal(t, base, ApplyAOIScale(model.RegionBihar, base, []model.PolygonAOI{{}}))
}

func TestApplyAOIScale_SmallAOIClampsAtFloor(t *testing.T) {
	base := BaseSummary(model.RegionBihar, model.Scenario1m)

	// A tiny AOI clamps the scale at 0.03.
	tiny := ApplyAOIScale(model.RegionBihar, base, []model.PolygonAOI{
		aoiBox(85.0, 25.0, 85.01, 25.01),
	})
	assert.Equal(t, 26, tiny.AreaKm2) // round(850 * 0.03)
	assert.Equal(t, 33_000, tiny.Population)
	assert.Less(t, tiny.RiskScore, base.RiskScore)
	assert.Equal(t, Classification(tiny.RiskScore), tiny.EmbankmentStatus)
}

func TestApplyAOIScale_HugeAOIClampsAtRegion(t *testing.T) {
	base := BaseSummary(model.RegionUttarakhand, model.Scenario2m)

	huge := ApplyAOIScale(model.RegionUttarakhand, base, []model.PolygonAOI{
		aoiBox(70, 20, 90, 35),
	})
	// Scale clamps to 1.0: area and population stay statewide, score gets
	// the full-AOI nudge.
	assert.Equal(t, base.AreaKm2, huge.AreaKm2)
	assert.Equal(t, base.Population, huge.Population)
	assert.InDelta(t, base.RiskScore+0.6, huge.RiskScore, 1e-9)
}

func TestApplyAOIScale_ScoreStaysInRange(t *testing.T) {
	base := Summary{AreaKm2: 100, Population: 1000, RiskScore: 9.9, EmbankmentStatus: "Critical"}
	scaled := ApplyAOIScale(model.RegionBihar, base, []model.PolygonAOI{aoiBox(70, 20, 90, 35)})
	assert.LessOrEqual(t, scaled.RiskScore, 10.0)
}

func TestImpactComparison(t *testing.T) {
	items := ImpactComparison(model.RegionBihar, nil)
	require.Len(t, items, 4)

	assert.Equal(t, "Bihar +1m", items[0].Name)
	assert.Equal(t, "Bihar +2m", items[1].Name)
	assert.Equal(t, 850, items[0].AreaKm2)
	assert.InDelta(t, 1.1, items[0].Risk, 1e-9)
	assert.InDelta(t, 2.4, items[1].Risk, 1e-9)

	// Without an AOI the AOI items equal the statewide items.
	assert.Equal(t, items[0], items[2])
	assert.Equal(t, items[1], items[3])
}

func TestFeatureImportances_StableOrder(t *testing.T) {
	fi := FeatureImportances()
	require.Len(t, fi, 5)
	assert.Equal(t, "Elevation", fi[0].Name)
	for i := 1; i < len(fi); i++ {
		assert.LessOrEqual(t, fi[i].Importance, fi[i-1].Importance)
	}
}

func TestTerrainProfile(t *testing.T) {
	profile := TerrainProfile(model.RegionUttarakhand)
	require.Len(t, profile, 40)
	assert.Equal(t, 650, profile[0])
	assert.Equal(t, TerrainProfile(model.RegionUttarakhand), profile, "deterministic")

	// Different regions sit at different base elevations.
	assert.NotEqual(t, profile[0], TerrainProfile(model.RegionBihar)[0])
}
