//go:build !integration

package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnipLine(t *testing.T) {
	long := strings.Repeat("a", 50) + strings.Repeat("b", 50)

	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "short passes through", in: "POINT (1 2)", maxLen: 20, want: "POINT (1 2)"},
		{name: "exactly at limit", in: "12345", maxLen: 5, want: "12345"},
		{
			name:   "long is abbreviated",
			in:     long,
			maxLen: 21,
			want:   "aaaaaaaa ... bbbbbbbb",
		},
		{name: "tiny limit passes through", in: long, maxLen: 6, want: long},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snipLine(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			if tt.maxLen >= 8 {
				assert.LessOrEqual(t, len(got), tt.maxLen)
			}
		})
	}
}

func TestSnipLineKeepsUTF8Valid(t *testing.T) {
	long := strings.Repeat("é", 100)

	got := snipLine(long, 23)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 23)
	assert.Contains(t, got, " ... ")
	assert.True(t, strings.HasPrefix(got, "é"))
	assert.True(t, strings.HasSuffix(got, "é"))
}

func TestRunSnip(t *testing.T) {
	input := "POINT (1 2)\n" + strings.Repeat("x", 200) + "\n"

	var out bytes.Buffer
	require.NoError(t, runSnip(strings.NewReader(input), &out, 40))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "POINT (1 2)", lines[0])
	assert.Contains(t, lines[1], " ... ")
	assert.LessOrEqual(t, len(lines[1]), 40)
}
