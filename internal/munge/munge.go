// Package munge coerces arbitrary geo-oriented JSON into GeoJSON features.
package munge

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Key aliases checked, in order, when the object carries no geometry member.
var (
	latKeys = []string{"latitude", "lat"}
	lonKeys = []string{"longitude", "lon", "lng"}
)

// ToFeature converts one line of arbitrary JSON to a GeoJSON Feature.
// Precedence: an embedded GeoJSON "geometry" member wins; otherwise a
// lat/lon key pair becomes a Point. All remaining members are carried over
// as properties. Objects with neither are an error.
func ToFeature(raw string) (*geojson.Feature, error) {
	var obj map[string]jsoniter.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, eris.Wrapf(err, "munge: not a JSON object: %q", raw)
	}

	if rawGeom, ok := obj["geometry"]; ok && string(rawGeom) != "null" {
		var g geom.T
		if err := geojson.Unmarshal(rawGeom, &g); err != nil {
			return nil, eris.Wrap(err, "munge: decode geometry member")
		}
		return &geojson.Feature{Geometry: g, Properties: properties(obj, "geometry")}, nil
	}

	lat, latKey, latOK := coordinate(obj, latKeys)
	lon, lonKey, lonOK := coordinate(obj, lonKeys)
	if !latOK || !lonOK {
		return nil, eris.Errorf("munge: no geometry or lat/lon members in %q", raw)
	}

	point := geom.NewPointFlat(geom.XY, []float64{lon, lat})
	return &geojson.Feature{Geometry: point, Properties: properties(obj, latKey, lonKey)}, nil
}

// coordinate pulls the first present alias as a float. JSON numbers and
// numeric strings both count.
func coordinate(obj map[string]jsoniter.RawMessage, keys []string) (float64, string, bool) {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var num float64
		if err := json.Unmarshal(raw, &num); err == nil {
			return num, key, true
		}
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			if num, err := strconv.ParseFloat(str, 64); err == nil {
				return num, key, true
			}
		}
		return 0, key, false
	}
	return 0, "", false
}

// properties decodes every member except the consumed ones. A pre-existing
// "properties" object is merged in rather than nested.
func properties(obj map[string]jsoniter.RawMessage, consumed ...string) map[string]any {
	skip := map[string]bool{"type": true}
	for _, key := range consumed {
		skip[key] = true
	}

	props := map[string]any{}
	for key, raw := range obj {
		if skip[key] {
			continue
		}
		if key == "properties" {
			var nested map[string]any
			if err := json.Unmarshal(raw, &nested); err == nil {
				for k, v := range nested {
					props[k] = v
				}
				continue
			}
		}
		var val any
		if err := json.Unmarshal(raw, &val); err == nil {
			props[key] = val
		}
	}
	return props
}
