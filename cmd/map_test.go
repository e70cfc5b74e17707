//go:build !integration

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

func TestBuildMapURL(t *testing.T) {
	features := []*geojson.Feature{
		{Geometry: geom.NewPointFlat(geom.XY, []float64{1, 2})},
	}

	mapURL, err := buildMapURL("http://geojson.io/", features, 30000)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(mapURL, "http://geojson.io/#data=data:application/json,"))
	assert.Contains(t, mapURL, "FeatureCollection")
	assert.NotContains(t, mapURL, " ")
}

func TestBuildMapURLOverLimit(t *testing.T) {
	var features []*geojson.Feature
	for i := 0; i < 50; i++ {
		features = append(features, &geojson.Feature{
			Geometry: geom.NewPointFlat(geom.XY, []float64{float64(i), float64(i)}),
		})
	}

	_, err := buildMapURL("http://geojson.io/", features, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL limit")
}
