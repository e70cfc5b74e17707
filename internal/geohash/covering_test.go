package geohash

import (
	"testing"

	gh "github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestCoveringPoint(t *testing.T) {
	// A point is covered by exactly the cell it encodes to.
	point := geom.NewPointFlat(geom.XY, []float64{10.40744, 57.64911})

	cells, err := Covering(point, 5)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, gh.EncodeWithPrecision(57.64911, 10.40744, 5), cells[0])
}

func TestCoveringPolygonSpansCells(t *testing.T) {
	// A box straddling the equator and prime meridian touches all four
	// level-1 quadrant cells around (0,0).
	flat := []float64{-1, -1, 1, -1, 1, 1, -1, 1, -1, -1}
	poly := geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})

	cells, err := Covering(poly, 2)
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	for _, cell := range cells {
		assert.Len(t, cell, 2)
		box := gh.BoundingBox(cell)
		assert.True(t, box.MaxLng >= -1 && box.MinLng <= 1)
		assert.True(t, box.MaxLat >= -1 && box.MinLat <= 1)
	}

	// The cell containing the origin's NE quadrant corner must be present.
	assert.Contains(t, cells, gh.EncodeWithPrecision(0.5, 0.5, 2))
}

func TestCoveringInvalidLevel(t *testing.T) {
	point := geom.NewPointFlat(geom.XY, []float64{0, 0})
	_, err := Covering(point, 0)
	assert.Error(t, err)
}
