package munge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestToFeatureFromGeometryMember(t *testing.T) {
	raw := `{"name":"depot","geometry":{"type":"Point","coordinates":[10.0,20.0]}}`

	f, err := ToFeature(raw)
	require.NoError(t, err)

	p, ok := f.Geometry.(*geom.Point)
	require.True(t, ok)
	assert.InDelta(t, 10.0, p.X(), 1e-9)
	assert.InDelta(t, 20.0, p.Y(), 1e-9)
	assert.Equal(t, "depot", f.Properties["name"])
	assert.NotContains(t, f.Properties, "geometry")
}

func TestToFeatureFromLatLonKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "full names", raw: `{"latitude":45.5,"longitude":-122.6,"name":"pdx"}`},
		{name: "short names", raw: `{"lat":45.5,"lon":-122.6,"name":"pdx"}`},
		{name: "lng alias", raw: `{"lat":45.5,"lng":-122.6,"name":"pdx"}`},
		{name: "string coordinates", raw: `{"lat":"45.5","lon":"-122.6","name":"pdx"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ToFeature(tt.raw)
			require.NoError(t, err)

			p, ok := f.Geometry.(*geom.Point)
			require.True(t, ok)
			assert.InDelta(t, -122.6, p.X(), 1e-9)
			assert.InDelta(t, 45.5, p.Y(), 1e-9)
			assert.Equal(t, "pdx", f.Properties["name"])
		})
	}
}

func TestToFeatureMergesExistingProperties(t *testing.T) {
	raw := `{"lat":1.0,"lon":2.0,"properties":{"color":"red"},"extra":7}`

	f, err := ToFeature(raw)
	require.NoError(t, err)
	assert.Equal(t, "red", f.Properties["color"])
	assert.EqualValues(t, 7, f.Properties["extra"])
}

func TestToFeatureGeometryWinsOverLatLon(t *testing.T) {
	raw := `{"lat":1.0,"lon":2.0,"geometry":{"type":"Point","coordinates":[9.0,9.0]}}`

	f, err := ToFeature(raw)
	require.NoError(t, err)

	p := f.Geometry.(*geom.Point)
	assert.InDelta(t, 9.0, p.X(), 1e-9)
}

func TestToFeatureErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{nope"},
		{name: "not an object", raw: "[1,2,3]"},
		{name: "no geo members", raw: `{"name":"nowhere"}`},
		{name: "lat without lon", raw: `{"lat":1.0}`},
		{name: "non numeric lat", raw: `{"lat":"north","lon":2.0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToFeature(tt.raw)
			assert.Error(t, err)
		})
	}
}
