package flood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storm-buster/jal-setu/internal/geometry"
	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/river"
)

func TestBufferDistanceKm_Scenario0mIsChannelWidth(t *testing.T) {
	// 0m ignores slope entirely.
	assert.InDelta(t, 0.4, BufferDistanceKm(model.Scenario0m, 500, 2.0), 1e-9)
	assert.InDelta(t, 0.4, BufferDistanceKm(model.Scenario0m, 500, 90.0), 1e-9)
	assert.InDelta(t, 0.64, BufferDistanceKm(model.Scenario0m, 800, 0.0), 1e-9)
}

func TestBufferDistanceKm_FloodScenarios(t *testing.T) {
	// base * (1 + width/1000) * (1 + 1/slope)
	assert.InDelta(t, 6.75, BufferDistanceKm(model.Scenario1m, 500, 2.0), 1e-9)
	assert.InDelta(t, 18.0, BufferDistanceKm(model.Scenario2m, 500, 2.0), 1e-9)
}

func TestBufferDistanceKm_SlopeClamp(t *testing.T) {
	// Slope is clamped to 0.1 degrees: factor 1 + 1/0.1 = 11.
	assert.InDelta(t, 3.0*1.5*11.0, BufferDistanceKm(model.Scenario1m, 500, 0.0), 1e-9)
	assert.InDelta(t, BufferDistanceKm(model.Scenario1m, 500, 0.0), BufferDistanceKm(model.Scenario1m, 500, 0.05), 1e-9)
}

func TestBufferDistanceKm_Monotonic(t *testing.T) {
	widths := []float64{100, 500, 900}
	slopes := []float64{0.5, 2.0, 10.0}

	for _, w := range widths {
		for _, s := range slopes {
			d0 := BufferDistanceKm(model.Scenario0m, w, s)
			d1 := BufferDistanceKm(model.Scenario1m, w, s)
			d2 := BufferDistanceKm(model.Scenario2m, w, s)
			assert.LessOrEqual(t, d0, d1, "width=%v slope=%v", w, s)
			assert.LessOrEqual(t, d1, d2, "width=%v slope=%v", w, s)
		}
	}
}

func TestBufferDistanceKm_UnknownScenario(t *testing.T) {
	assert.Zero(t, BufferDistanceKm(model.Scenario("5m"), 500, 2.0))
}

func TestBufferPolygon_EmptyCases(t *testing.T) {
	riv := river.Segment{Name: "Test", AvgWidthM: 100, FloodProne: true}

	for name, bg := range map[string]BufferedGeometry{
		"no centerline": BufferPolygon(riv, 3.0),
		"zero buffer": BufferPolygon(river.Segment{
			Name:       "Test",
			Centerline: []geometry.Point{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}},
			FloodProne: true,
		}, 0),
	} {
		assert.Empty(t, bg.Polygon.Coords(), name)
		assert.Equal(t, false, bg.Properties["flood_prone"], name)
		assert.Equal(t, 0.0, bg.Properties["buffer_km"], name)
		assert.Equal(t, "Test", bg.Properties["river_name"], name)
	}
}

func TestBufferPolygon_CorridorShape(t *testing.T) {
	riv := river.Segment{
		Name:       "Straight",
		Centerline: []geometry.Point{{Lon: 10, Lat: 1}, {Lon: 10, Lat: 2}, {Lon: 10, Lat: 3}},
		AvgWidthM:  400,
		FloodProne: true,
	}
	bufferKm := 111.0 // exactly 1 degree of offset
	bg := BufferPolygon(riv, bufferKm)

	coords := bg.Polygon.Coords()
	require.Len(t, coords, 1, "exactly one ring")
	ring := coords[0]

	// Lead-in corner + left wall + right wall + closing point.
	require.Len(t, ring, 2*len(riv.Centerline)+2)

	// Lead-in corner sits below and left of the first point.
	assert.Equal(t, []float64{9, 0}, []float64{ring[0][0], ring[0][1]})
	// Left wall offsets longitude only.
	assert.Equal(t, []float64{9, 1}, []float64{ring[1][0], ring[1][1]})
	assert.Equal(t, []float64{9, 3}, []float64{ring[3][0], ring[3][1]})
	// Right wall walks the centerline backwards.
	assert.Equal(t, []float64{11, 3}, []float64{ring[4][0], ring[4][1]})
	assert.Equal(t, []float64{11, 1}, []float64{ring[6][0], ring[6][1]})
	// Closed.
	assert.Equal(t, ring[0], ring[len(ring)-1])

	assert.Equal(t, true, bg.Properties["flood_prone"])
	assert.Equal(t, bufferKm, bg.Properties["buffer_km"])
	assert.Equal(t, 400.0, bg.Properties["river_width_m"])
}
