//go:build !integration

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRead(t *testing.T) {
	input := "12.0,34.0\n9q5\nPOINT (1 2)\nnot a place\n"

	var out bytes.Buffer
	require.NoError(t, runRead(strings.NewReader(input), &out))

	assert.Equal(t,
		"LatLon: 12.0,34.0\n"+
			"Geohash: 9q5\n"+
			"WKT: POINT (1 2)\n"+
			"Unrecognized: not a place\n",
		out.String())
}

func TestRunReadSkipsBlankLines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runRead(strings.NewReader("\n\n9q5\n\n"), &out))
	assert.Equal(t, "Geohash: 9q5\n", out.String())
}
