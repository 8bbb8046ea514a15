package flood

import (
	"math"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/river"
)

// DefaultTerrainSlopeDeg is the terrain slope assumed when no per-region
// terrain model is available.
const DefaultTerrainSlopeDeg = 2.0

// kmPerDegreeLat converts buffer kilometers to a pseudo-degree offset.
// The corridor is not longitude-corrected by latitude.
const kmPerDegreeLat = 111.0

// baseBufferKm is the base flood spread per scenario depth. The 0m entry
// is nominal only; that scenario derives its buffer from channel width.
var baseBufferKm = map[model.Scenario]float64{
	model.Scenario0m: 0.1,
	model.Scenario1m: 3.0,
	model.Scenario2m: 8.0,
}

// BufferDistanceKm computes the lateral flood spread in kilometers for a
// scenario, river width, and terrain slope.
//
// For 0m the result is the approximate channel half-width with margin
// (width/1000 * 0.8) and slope is ignored. For 1m and 2m the base spread
// grows with river width and shrinks with slope; slope is clamped to 0.1
// degrees to keep flat terrain from blowing up the division. For a fixed
// width and slope the result is monotonic across 0m, 1m, 2m.
//
// Scenario values outside the closed enumeration are a caller bug; they
// yield a zero buffer and a warning rather than a panic.
func BufferDistanceKm(scenario model.Scenario, riverWidthM, terrainSlopeDeg float64) float64 {
	base, ok := baseBufferKm[scenario]
	if !ok {
		zap.L().Warn("flood: buffer distance for unknown scenario",
			zap.String("scenario", string(scenario)))
		return 0
	}

	if scenario == model.Scenario0m {
		return (riverWidthM / 1000.0) * 0.8
	}

	widthFactor := 1.0 + riverWidthM/1000.0
	slopeFactor := 1.0 + 1.0/math.Max(terrainSlopeDeg, 0.1)
	return base * widthFactor * slopeFactor
}

// BufferedGeometry is the corridor polygon generated around one river,
// together with its feature properties.
type BufferedGeometry struct {
	Polygon    *geom.Polygon
	Properties map[string]any
}

// BufferPolygon builds a closed corridor ring around the river centerline:
// a "left" wall walking forward offset by -buffer in longitude, a "right"
// wall walking back offset by +buffer, closed onto a lead-in corner below
// the first point. The corridor is aligned to longitude, not to the river's
// local bearing; this is a deliberate approximation, not a geometric offset
// curve.
//
// A non-positive buffer or an empty centerline yields an empty polygon with
// flood_prone=false, never an error.
func BufferPolygon(riv river.Segment, bufferKm float64) BufferedGeometry {
	if bufferKm <= 0 || len(riv.Centerline) == 0 {
		return BufferedGeometry{
			Polygon: geom.NewPolygon(geom.XY),
			Properties: map[string]any{
				"river_name":  riv.Name,
				"buffer_km":   0.0,
				"flood_prone": false,
			},
		}
	}

	offsetDeg := bufferKm / kmPerDegreeLat

	flat := make([]float64, 0, (2*len(riv.Centerline)+2)*2)

	first := riv.Centerline[0]
	flat = append(flat, first.Lon-offsetDeg, first.Lat-offsetDeg)

	for _, p := range riv.Centerline {
		flat = append(flat, p.Lon-offsetDeg, p.Lat)
	}
	for i := len(riv.Centerline) - 1; i >= 0; i-- {
		flat = append(flat, riv.Centerline[i].Lon+offsetDeg, riv.Centerline[i].Lat)
	}
	flat = append(flat, flat[0], flat[1])

	poly := geom.NewPolygon(geom.XY)
	if err := poly.Push(geom.NewLinearRingFlat(geom.XY, flat)); err != nil {
		zap.L().Debug("flood: skipping malformed buffer ring",
			zap.String("river", riv.Name), zap.Error(err))
		poly = geom.NewPolygon(geom.XY)
	}

	return BufferedGeometry{
		Polygon: poly,
		Properties: map[string]any{
			"river_name":    riv.Name,
			"buffer_km":     bufferKm,
			"flood_prone":   riv.FloodProne,
			"river_width_m": riv.AvgWidthM,
		},
	}
}
