// Package geohash adapts the mmcloughlin geohash codec to the canonical
// go-geom geometry types used across gsq.
package geohash

import (
	"strings"

	gh "github.com/mmcloughlin/geohash"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// Alphabet is the base-32 character set, in value order.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// MaxPrecision is the longest supported geohash, in characters.
const MaxPrecision = 12

// ValidatePrecision checks a character-count precision argument.
func ValidatePrecision(chars int) error {
	if chars < 1 || chars > MaxPrecision {
		return eris.Errorf("geohash: precision must be between 1 and %d, got %d", MaxPrecision, chars)
	}
	return nil
}

// ValidateHash checks that a string is alphabet-valid geohash text.
func ValidateHash(hash string) error {
	if len(hash) < 1 || len(hash) > MaxPrecision {
		return eris.Errorf("geohash: invalid length %d", len(hash))
	}
	for _, r := range hash {
		if !strings.ContainsRune(Alphabet, r) {
			return eris.Errorf("geohash: invalid character %q in %q", r, hash)
		}
	}
	return nil
}

// Encode returns the geohash of a lat/lon pair at the given character precision.
func Encode(lat, lon float64, chars int) (string, error) {
	if err := ValidatePrecision(chars); err != nil {
		return "", err
	}
	return gh.EncodeWithPrecision(lat, lon, uint(chars)), nil
}

// BBox returns the geohash cell as a closed polygon ring, (lon, lat) ordered.
func BBox(hash string) (*geom.Polygon, error) {
	if err := ValidateHash(hash); err != nil {
		return nil, err
	}
	box := gh.BoundingBox(hash)
	return boxPolygon(box), nil
}

// Center returns the center point of the geohash cell.
func Center(hash string) (*geom.Point, error) {
	if err := ValidateHash(hash); err != nil {
		return nil, err
	}
	lat, lon := gh.BoundingBox(hash).Center()
	return geom.NewPointFlat(geom.XY, []float64{lon, lat}), nil
}

// Neighbors returns the 8 adjacent cells, clockwise from north.
func Neighbors(hash string) ([]string, error) {
	if err := ValidateHash(hash); err != nil {
		return nil, err
	}
	return gh.Neighbors(hash), nil
}

// Children returns the 32 cells one character below the given cell,
// in alphabet order.
func Children(hash string) ([]string, error) {
	if err := ValidateHash(hash); err != nil {
		return nil, err
	}
	if len(hash) >= MaxPrecision {
		return nil, eris.Errorf("geohash: %q is already at max precision", hash)
	}
	children := make([]string, 0, len(Alphabet))
	for _, c := range Alphabet {
		children = append(children, hash+string(c))
	}
	return children, nil
}

// Roots returns the 32 single-character cells covering the globe.
func Roots() []string {
	roots := make([]string, 0, len(Alphabet))
	for _, c := range Alphabet {
		roots = append(roots, string(c))
	}
	return roots
}

// FromLong converts a 64-bit integer geohash to its base-32 string form.
func FromLong(v uint64) string {
	return gh.ConvertIntToString(v, MaxPrecision)
}

func boxPolygon(box gh.Box) *geom.Polygon {
	flat := []float64{
		box.MinLng, box.MinLat,
		box.MaxLng, box.MinLat,
		box.MaxLng, box.MaxLat,
		box.MinLng, box.MaxLat,
		box.MinLng, box.MinLat,
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}
