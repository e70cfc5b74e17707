// Package spatial provides the geometric predicates and shape algorithms
// used by gsq commands. Geometries stay in go-geom form at the package
// boundary; internally they are handed to the simplefeatures engine through
// a WKB round trip.
package spatial

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// ErrUnsupportedPredicate marks a containment check whose container is not
// polygonal. Contains is only defined for Polygon and MultiPolygon containers.
var ErrUnsupportedPredicate = eris.New("spatial: contains requires a Polygon or MultiPolygon container")

// Intersects reports whether the two geometries share at least one point.
func Intersects(a, b geom.T) (bool, error) {
	sa, err := toEngine(a)
	if err != nil {
		return false, err
	}
	sb, err := toEngine(b)
	if err != nil {
		return false, err
	}
	return sfIntersects(sa, sb), nil
}

// Contains reports whether b lies entirely within a's interior or boundary.
// a must be a Polygon or MultiPolygon.
func Contains(a, b geom.T) (bool, error) {
	switch a.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
	default:
		return false, eris.Wrapf(ErrUnsupportedPredicate, "got %T", a)
	}

	sa, err := toEngine(a)
	if err != nil {
		return false, err
	}
	sb, err := toEngine(b)
	if err != nil {
		return false, err
	}
	return sfContains(sa, sb)
}

// Centroid returns the centroid of a geometry as a point.
func Centroid(g geom.T) (*geom.Point, error) {
	sg, err := toEngine(g)
	if err != nil {
		return nil, err
	}
	xy, ok := sg.Centroid().XY()
	if !ok {
		return nil, eris.New("spatial: centroid of empty geometry")
	}
	return geom.NewPointFlat(geom.XY, []float64{xy.X, xy.Y}), nil
}

// Simplify runs Ramer-Douglas-Peucker simplification with the given
// epsilon threshold, in degrees.
func Simplify(g geom.T, epsilon float64) (geom.T, error) {
	if epsilon < 0 {
		return nil, eris.Errorf("spatial: negative simplify epsilon %v", epsilon)
	}
	sg, err := toEngine(g)
	if err != nil {
		return nil, err
	}
	simplified, err := sg.Simplify(epsilon)
	if err != nil {
		return nil, eris.Wrap(err, "spatial: simplify")
	}
	return fromEngine(simplified)
}

// SimplifyToCoordCount doubles the epsilon from a small seed until the
// simplified geometry has at most maxCoords coordinates, returning the
// result and the epsilon that produced it.
func SimplifyToCoordCount(g geom.T, maxCoords int) (geom.T, float64, error) {
	if maxCoords < 2 {
		return nil, 0, eris.Errorf("spatial: coordinate target must be at least 2, got %d", maxCoords)
	}
	if CoordCount(g) <= maxCoords {
		return g, 0, nil
	}

	epsilon := 1e-8
	for i := 0; i < 64; i++ {
		simplified, err := Simplify(g, epsilon)
		if err != nil {
			return nil, 0, err
		}
		if CoordCount(simplified) <= maxCoords {
			return simplified, epsilon, nil
		}
		epsilon *= 2
	}
	return nil, 0, eris.Errorf("spatial: could not simplify below %d coordinates", maxCoords)
}

// CoordCount returns the number of coordinate pairs in a geometry.
func CoordCount(g geom.T) int {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		total := 0
		for _, sub := range gc.Geoms() {
			total += CoordCount(sub)
		}
		return total
	}
	return len(g.FlatCoords()) / g.Stride()
}

// BBox returns the bounding box of a geometry.
func BBox(g geom.T) *geom.Bounds {
	return g.Bounds()
}

// BBoxPolygon converts a bounds to a closed polygon ring.
func BBoxPolygon(b *geom.Bounds) *geom.Polygon {
	flat := []float64{
		b.Min(0), b.Min(1),
		b.Max(0), b.Min(1),
		b.Max(0), b.Max(1),
		b.Min(0), b.Max(1),
		b.Min(0), b.Min(1),
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

// DistanceMeters returns the haversine distance between two points in meters.
func DistanceMeters(a, b *geom.Point) float64 {
	pa := orb.Point{a.X(), a.Y()}
	pb := orb.Point{b.X(), b.Y()}
	return orbgeo.DistanceHaversine(pa, pb)
}
