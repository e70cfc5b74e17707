package entity

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestEntityLatLon(t *testing.T) {
	e := New("45.5,-122.6")
	require.Equal(t, KindLatLon, e.Kind)

	g, err := e.Geometry()
	require.NoError(t, err)

	p, ok := g.(*geom.Point)
	require.True(t, ok)
	// Canonical order is (lon, lat) even though the text is lat,lon.
	assert.InDelta(t, -122.6, p.X(), 1e-9)
	assert.InDelta(t, 45.5, p.Y(), 1e-9)
}

func TestEntityLatLonRangeError(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "latitude too big", line: "91.0,0.0"},
		{name: "latitude too small", line: "-90.5,0.0"},
		{name: "longitude too big", line: "0.0,180.5"},
		{name: "longitude too small", line: "0.0,-181.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.line)
			require.Equal(t, KindLatLon, e.Kind)

			_, err := e.Geometry()
			assert.True(t, eris.Is(err, ErrRange))
		})
	}
}

func TestEntityGeohashIsBBoxPolygon(t *testing.T) {
	e := New("9q5")
	require.Equal(t, KindGeohash, e.Kind)

	g, err := e.Geometry()
	require.NoError(t, err)

	poly, ok := g.(*geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, 5, len(poly.FlatCoords())/poly.Stride())
}

func TestEntityWKT(t *testing.T) {
	e := New("POINT (30 10)")
	g, err := e.Geometry()
	require.NoError(t, err)

	p, ok := g.(*geom.Point)
	require.True(t, ok)
	assert.InDelta(t, 30.0, p.X(), 1e-9)
	assert.InDelta(t, 10.0, p.Y(), 1e-9)
}

func TestEntityWKTParseError(t *testing.T) {
	e := New("POINT (30")
	require.Equal(t, KindWKT, e.Kind)

	_, err := e.Geometry()
	assert.True(t, eris.Is(err, ErrParse))
}

func TestEntityGeoJSONGeometry(t *testing.T) {
	e := New(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`)
	g, err := e.Geometry()
	require.NoError(t, err)

	_, ok := g.(*geom.LineString)
	assert.True(t, ok)
}

func TestEntityFeaturePreservesProperties(t *testing.T) {
	e := New(`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"name":"depot"}}`)
	features, err := e.Features()
	require.NoError(t, err)
	require.Len(t, features, 1)

	assert.Equal(t, "depot", features[0].Properties["name"])
}

func TestEntityFeatureMissingGeometry(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "null geometry", line: `{"type":"Feature","geometry":null,"properties":{}}`},
		{name: "absent geometry", line: `{"type":"Feature","properties":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.line).Geometry()
			assert.True(t, eris.Is(err, ErrMissingGeometry))
		})
	}
}

func TestEntityFeatureCollectionSkipsNullGeometries(t *testing.T) {
	line := `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{}},
		{"type":"Feature","geometry":null,"properties":{}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]},"properties":{}}
	]}`
	e := New(line)
	require.Equal(t, KindGeoJSONFeatureCollection, e.Kind)

	geoms, err := e.Geometries()
	require.NoError(t, err)
	assert.Len(t, geoms, 2)
}

func TestEntityUnrecognizedConversionFails(t *testing.T) {
	_, err := New("certainly not a geometry!").Geometry()
	assert.True(t, eris.Is(err, ErrUnrecognized))
}

func TestEntityMemoizesConversion(t *testing.T) {
	e := New("POINT (3 4)")

	first, err := e.Geometry()
	require.NoError(t, err)
	second, err := e.Geometry()
	require.NoError(t, err)

	assert.Same(t, first.(*geom.Point), second.(*geom.Point))
}
