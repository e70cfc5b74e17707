//go:build !integration

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWKT(t *testing.T) {
	input := "12.0,34.0\n" +
		`{"type":"Point","coordinates":[34.0,12.0]}` + "\n" +
		"POINT (34 12)\n"

	var out bytes.Buffer
	require.NoError(t, runWKT(strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "POINT (34 12)", line)
	}
}

func TestRunWKTBadInputFails(t *testing.T) {
	var out bytes.Buffer
	err := runWKT(strings.NewReader("POINT (1 2)\nnonsense\n"), &out)
	assert.Error(t, err)
	assert.Equal(t, "POINT (1 2)\n", out.String())
}
