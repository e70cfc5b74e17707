package geohash

import (
	gh "github.com/mmcloughlin/geohash"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/gsq/internal/spatial"
)

// Covering returns the geohash cells at the given precision whose boxes
// intersect the geometry, in row-major order from the southwest corner of
// the geometry's bounding box. Cells inside the bbox but clear of the
// geometry itself are dropped.
func Covering(g geom.T, chars int) ([]string, error) {
	if err := ValidatePrecision(chars); err != nil {
		return nil, err
	}

	bounds := g.Bounds()
	minLon, minLat := bounds.Min(0), bounds.Min(1)
	maxLon, maxLat := bounds.Max(0), bounds.Max(1)

	var cells []string
	row := gh.EncodeWithPrecision(minLat, minLon, uint(chars))
	for {
		cell := row
		for {
			box := gh.BoundingBox(cell)
			hit, err := spatial.Intersects(boxPolygon(box), g)
			if err != nil {
				return nil, err
			}
			if hit {
				cells = append(cells, cell)
			}
			if box.MaxLng >= maxLon {
				break
			}
			cell = gh.Neighbor(cell, gh.East)
		}
		if gh.BoundingBox(row).MaxLat >= maxLat {
			break
		}
		row = gh.Neighbor(row, gh.North)
	}

	return cells, nil
}
