package entity

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	ghash "github.com/sells-group/gsq/internal/geohash"
)

// Re-encoders from canonical geometry back into the supported text formats.
// These are pure functions with no knowledge of the originating entity.

// EncodeWKT serializes a geometry as Well-Known Text.
func EncodeWKT(g geom.T) (string, error) {
	s, err := wkt.Marshal(g)
	if err != nil {
		return "", eris.Wrap(err, "entity: encode WKT")
	}
	return s, nil
}

// EncodeGeoJSONGeometry serializes a geometry as a bare GeoJSON geometry.
func EncodeGeoJSONGeometry(g geom.T) (string, error) {
	b, err := geojson.Marshal(g)
	if err != nil {
		return "", eris.Wrap(err, "entity: encode GeoJSON geometry")
	}
	return string(b), nil
}

// EncodeFeature serializes a GeoJSON feature. Features built from bare
// geometries carry an empty properties object, never null.
func EncodeFeature(f *geojson.Feature) (string, error) {
	if f.Properties == nil {
		f.Properties = map[string]any{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", eris.Wrap(err, "entity: encode GeoJSON feature")
	}
	return string(b), nil
}

// EncodeFeatureCollection serializes features as a GeoJSON FeatureCollection.
func EncodeFeatureCollection(features []*geojson.Feature) (string, error) {
	for _, f := range features {
		if f.Properties == nil {
			f.Properties = map[string]any{}
		}
	}
	fc := geojson.FeatureCollection{Features: features}
	b, err := json.Marshal(&fc)
	if err != nil {
		return "", eris.Wrap(err, "entity: encode GeoJSON feature collection")
	}
	return string(b), nil
}

// EncodeLatLon serializes a point as "lat,lon" text.
func EncodeLatLon(g geom.T) (string, error) {
	p, ok := g.(*geom.Point)
	if !ok {
		return "", eris.Wrapf(ErrNotAPoint, "cannot format %T as lat,lon", g)
	}
	lat := strconv.FormatFloat(p.Y(), 'f', -1, 64)
	lon := strconv.FormatFloat(p.X(), 'f', -1, 64)
	return lat + "," + lon, nil
}

// EncodeGeohash serializes a point as a geohash at the given precision.
func EncodeGeohash(g geom.T, chars int) (string, error) {
	p, ok := g.(*geom.Point)
	if !ok {
		return "", eris.Wrapf(ErrNotAPoint, "cannot take geohash of %T", g)
	}
	return ghash.Encode(p.Y(), p.X(), chars)
}
