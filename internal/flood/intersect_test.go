package flood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storm-buster/jal-setu/internal/geometry"
	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/river"
)

func testEngine() *Engine {
	return NewEngine(river.Default())
}

func square(minLon, minLat, maxLon, maxLat float64) geometry.Ring {
	return geometry.Ring{
		{Lon: minLon, Lat: minLat}, {Lon: maxLon, Lat: minLat}, {Lon: maxLon, Lat: maxLat}, {Lon: minLon, Lat: maxLat},
	}
}

func TestFindIntersections_EmptyInputs(t *testing.T) {
	e := testEngine()

	assert.Empty(t, e.FindIntersections(model.RegionBihar, nil))
	assert.Empty(t, e.FindIntersections(model.Region("Atlantis"), []geometry.Ring{square(84, 25, 86, 26)}))
}

func TestFindIntersections_BBoxFastPath(t *testing.T) {
	e := testEngine()

	// Nowhere near any Indian river network.
	results := e.FindIntersections(model.RegionBihar, []geometry.Ring{square(0, 0, 1, 1)})
	assert.Empty(t, results)
}

func TestFindIntersections_VertexInsideRing(t *testing.T) {
	e := testEngine()

	// Small box around the first Ganges vertex in Bihar (84.2, 25.6).
	results := e.FindIntersections(model.RegionBihar, []geometry.Ring{square(84.0, 25.5, 84.4, 25.7)})
	require.Len(t, results, 1)
	assert.Equal(t, "Ganges", results[0].RiverName)
	assert.True(t, results[0].IsIntersecting)
	assert.InDelta(t, 10.0, results[0].IntersectionLengthKm, 1e-9)
}

func TestFindIntersections_EdgeCrossingOnly(t *testing.T) {
	reg := river.NewRegistry(map[model.Region][]river.Segment{
		model.RegionBihar: {
			{
				Name:       "Crosser",
				Centerline: []geometry.Point{{Lon: -1, Lat: 0.5}, {Lon: 2, Lat: 0.5}},
				AvgWidthM:  100,
				FloodProne: true,
			},
		},
	})
	e := NewEngine(reg)

	// Both river vertices lie outside the unit square, so only the
	// segment-crossing pass can detect this one.
	results := e.FindIntersections(model.RegionBihar, []geometry.Ring{square(0, 0, 1, 1)})
	require.Len(t, results, 1)
	assert.Equal(t, "Crosser", results[0].RiverName)
}

func TestFindIntersections_OncePerRiverAndOrdered(t *testing.T) {
	e := testEngine()

	// Box around (86.3, 25.0), shared by the Ganges and Kosi centerlines.
	// Supplying the ring twice must not duplicate results.
	ring := square(86.2, 24.9, 86.4, 25.05)
	results := e.FindIntersections(model.RegionBihar, []geometry.Ring{ring, ring})

	require.Len(t, results, 2)
	assert.Equal(t, "Ganges", results[0].RiverName)
	assert.Equal(t, "Kosi", results[1].RiverName)
}

func TestFindIntersections_DegenerateRingsIgnored(t *testing.T) {
	e := testEngine()

	rings := []geometry.Ring{
		{},
		{{Lon: 84.2, Lat: 25.6}},
		{{Lon: 84.0, Lat: 25.5}, {Lon: 84.4, Lat: 25.7}}, // 2 points, not a polygon
	}
	assert.Empty(t, e.FindIntersections(model.RegionBihar, rings))
}

func TestFindIntersections_ShortRiverSkipped(t *testing.T) {
	reg := river.NewRegistry(map[model.Region][]river.Segment{
		model.RegionBihar: {
			{Name: "Dot", Centerline: []geometry.Point{{Lon: 0.5, Lat: 0.5}}, AvgWidthM: 100},
		},
	})
	e := NewEngine(reg)

	assert.Empty(t, e.FindIntersections(model.RegionBihar, []geometry.Ring{square(0, 0, 1, 1)}))
}
