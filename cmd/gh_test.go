//go:build !integration

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("6")
	require.NoError(t, err)
	assert.Equal(t, 6, level)

	for _, bad := range []string{"0", "13", "-1", "six", ""} {
		_, err := parseLevel(bad)
		assert.Error(t, err, "level %q", bad)
	}
}

func TestRunGHPoint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGHPoint(strings.NewReader("57.64911,10.40744\n"), &out, 11))
	assert.Equal(t, "u4pruydqqvj\n", out.String())
}

func TestRunGHPointRejectsNonPoints(t *testing.T) {
	var out bytes.Buffer
	err := runGHPoint(strings.NewReader("LINESTRING (0 0, 1 1)\n"), &out, 5)
	assert.Error(t, err)
}

func TestRunGHChildren(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGHChildren(strings.NewReader("9q5\n"), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 32)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "9q5"))
		assert.Len(t, line, 4)
	}
}

func TestRunGHChildrenRejectsOtherKinds(t *testing.T) {
	var out bytes.Buffer
	err := runGHChildren(strings.NewReader("POINT (1 2)\n"), &out)
	assert.Error(t, err)
}

func TestRunGHNeighbors(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGHNeighbors(strings.NewReader("9q5\n"), &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "9q5", lines[0])

	out.Reset()
	require.NoError(t, runGHNeighbors(strings.NewReader("9q5\n"), &out, true))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 8)
	assert.NotContains(t, lines, "9q5")
}

func TestRunGHEncodeLong(t *testing.T) {
	var out bytes.Buffer
	err := runGHEncodeLong(strings.NewReader("not a number\n"), &out)
	assert.Error(t, err)
}

func TestRunGHCovering(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGHCovering(strings.NewReader("57.64911,10.40744\n"), &out, 5, false))
	assert.Equal(t, "u4pru\n", out.String())
}

func TestRunGHCoveringOriginal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGHCovering(strings.NewReader("57.64911,10.40744\n"), &out, 5, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "57.64911,10.40744", lines[0])
	assert.Equal(t, "u4pru", lines[1])
}
