//go:build !integration

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGJGeom(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGJGeom(strings.NewReader("POINT (34 12)\n"), &out))
	assert.JSONEq(t, `{"type":"Point","coordinates":[34,12]}`, out.String())
}

func TestRunGJFeatureWrapsBareGeometries(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGJFeature(strings.NewReader("POINT (34 12)\n"), &out))
	assert.JSONEq(t,
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[34,12]},"properties":{}}`,
		out.String())
}

func TestRunGJFeaturePreservesProperties(t *testing.T) {
	input := `{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"name":"a"}}` + "\n"

	var out bytes.Buffer
	require.NoError(t, runGJFeature(strings.NewReader(input), &out))
	assert.Contains(t, out.String(), `"name":"a"`)
}

func TestRunGJFeatureCollection(t *testing.T) {
	input := "POINT (1 2)\n3.0,4.0\n"

	var out bytes.Buffer
	require.NoError(t, runGJFeatureCollection(strings.NewReader(input), &out))

	s := out.String()
	assert.Contains(t, s, `"type":"FeatureCollection"`)
	assert.Equal(t, 2, strings.Count(s, `"type":"Feature"`))
}
