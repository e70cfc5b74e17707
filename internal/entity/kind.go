// Package entity classifies single lines of geospatial text and converts
// them lazily into canonical go-geom geometries.
package entity

import (
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Kind identifies the textual encoding of one input line.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindLatLon
	KindGeohash
	KindWKT
	KindGeoJSONGeometry
	KindGeoJSONFeature
	KindGeoJSONFeatureCollection
)

// String returns the human-readable name used by `gsq read`.
func (k Kind) String() string {
	switch k {
	case KindLatLon:
		return "LatLon"
	case KindGeohash:
		return "Geohash"
	case KindWKT:
		return "WKT"
	case KindGeoJSONGeometry:
		return "GeoJSON Geometry"
	case KindGeoJSONFeature:
		return "GeoJSON Feature"
	case KindGeoJSONFeatureCollection:
		return "GeoJSON FeatureCollection"
	default:
		return "Unrecognized"
	}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	latLonRe  = regexp.MustCompile(`^-?\d+(\.\d+)?\s*,\s*-?\d+(\.\d+)?$`)
	geohashRe = regexp.MustCompile(`^[0123456789bcdefghjkmnpqrstuvwxyz]{1,12}$`)

	wktKeywords = []string{
		"POINT", "LINESTRING", "POLYGON",
		"MULTIPOINT", "MULTILINESTRING", "MULTIPOLYGON",
		"GEOMETRYCOLLECTION",
	}

	geoJSONGeometryTypes = map[string]bool{
		"Point":              true,
		"LineString":         true,
		"Polygon":            true,
		"MultiPoint":         true,
		"MultiLineString":    true,
		"MultiPolygon":       true,
		"GeometryCollection": true,
	}
)

// Classify tags one line of text with its apparent encoding. It is total:
// the worst case is KindUnrecognized, never an error. The checks run in
// priority order because some inputs satisfy more than one pattern (a bare
// numeric pair is also alphabet-valid geohash text). Range validation of
// LatLon magnitudes is deliberately deferred to conversion.
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return KindUnrecognized
	}

	if latLonRe.MatchString(trimmed) {
		return KindLatLon
	}

	if geohashRe.MatchString(trimmed) {
		return KindGeohash
	}

	upper := strings.ToUpper(trimmed)
	for _, kw := range wktKeywords {
		if strings.HasPrefix(upper, kw) {
			return KindWKT
		}
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(trimmed), &probe); err == nil {
		switch {
		case geoJSONGeometryTypes[probe.Type]:
			return KindGeoJSONGeometry
		case probe.Type == "Feature":
			return KindGeoJSONFeature
		case probe.Type == "FeatureCollection":
			return KindGeoJSONFeatureCollection
		}
	}

	return KindUnrecognized
}
