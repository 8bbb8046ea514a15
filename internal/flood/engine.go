// Package flood is the spatial-intersection and flood-buffer-geometry
// engine. Given the static river networks it decides which rivers a drawn
// area of interest touches, and synthesizes approximate flood-extent
// corridors per scenario depth. All computation is in memory on planar
// lon/lat coordinates.
package flood

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/storm-buster/jal-setu/internal/model"
	"github.com/storm-buster/jal-setu/internal/river"
)

// Engine combines the river registry, the geometric primitives, and the
// memoizing geometry cache. It is safe for concurrent use.
type Engine struct {
	rivers   *river.Registry
	cache    *Cache
	slopeDeg float64

	cacheCapacity int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheCapacity bounds the number of (region, scenario) geometry
// entries retained in memory.
func WithCacheCapacity(n int) Option {
	return func(e *Engine) {
		e.cacheCapacity = n
	}
}

// WithTerrainSlope overrides the terrain slope (degrees) used when
// computing buffer distances. Flatter terrain spreads floods further.
func WithTerrainSlope(deg float64) Option {
	return func(e *Engine) {
		e.slopeDeg = deg
	}
}

// NewEngine creates an Engine over the given river registry.
func NewEngine(rivers *river.Registry, opts ...Option) *Engine {
	e := &Engine{
		rivers:        rivers,
		slopeDeg:      DefaultTerrainSlopeDeg,
		cacheCapacity: DefaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cache = NewCache(e.cacheCapacity)
	return e
}

// FloodGeometry returns the flood-extent FeatureCollection for a region
// and scenario. Results are memoized: the collection is a pure function of
// the immutable registry, so entries never go stale and a cache hit returns
// the previously built value. Callers must treat the result as read-only.
//
// A region with no registered rivers yields an empty (non-nil) collection.
func (e *Engine) FloodGeometry(region model.Region, scenario model.Scenario) *FeatureCollection {
	if fc := e.cache.Get(region, scenario); fc != nil {
		return fc
	}

	// Concurrent misses for the same key may both build the collection;
	// the results are identical, so last write wins.
	fc := e.buildFloodGeometry(region, scenario)
	e.cache.Put(region, scenario, fc)
	return fc
}

func (e *Engine) buildFloodGeometry(region model.Region, scenario model.Scenario) *FeatureCollection {
	fc := NewFeatureCollection()
	for _, riv := range e.rivers.Rivers(region) {
		distKm := BufferDistanceKm(scenario, riv.AvgWidthM, e.slopeDeg)
		buffered := BufferPolygon(riv, distKm)

		coords := buffered.Polygon.Coords()
		if len(coords) == 0 {
			continue
		}

		props := make(map[string]any, len(buffered.Properties)+2)
		for k, v := range buffered.Properties {
			props[k] = v
		}
		props["scenario"] = string(scenario)
		props["region"] = string(region)

		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			Geometry:   Geometry{Type: "Polygon", Coordinates: coords},
			Properties: props,
		})
	}
	return fc
}

// Warm precomputes flood geometry for every registered region and
// scenario so the first map request does not pay the build cost.
func (e *Engine) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, region := range e.rivers.Regions() {
		for _, scenario := range model.Scenarios() {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				e.FloodGeometry(region, scenario)
				return nil
			})
		}
	}
	return g.Wait()
}

// CacheStats exposes hit/miss statistics of the geometry cache.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}
