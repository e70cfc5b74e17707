//go:build !integration

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCentroid(t *testing.T) {
	input := "POINT (10 20)\nPOLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))\n"

	var out bytes.Buffer
	require.NoError(t, runCentroid(strings.NewReader(input), &out))

	assert.Equal(t, "20,10\n5,5\n", out.String())
}

func TestRunCentroidBadInputFails(t *testing.T) {
	var out bytes.Buffer
	err := runCentroid(strings.NewReader("garbage\n"), &out)
	assert.Error(t, err)
}
