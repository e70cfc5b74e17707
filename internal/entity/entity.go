package entity

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
	"go.uber.org/zap"

	ghash "github.com/sells-group/gsq/internal/geohash"
)

// Entity is one classified line of input. The raw text is kept byte-for-byte;
// conversion to canonical geometry happens on first request and is memoized
// for the entity's lifetime.
type Entity struct {
	Raw  string
	Kind Kind

	features  []*geojson.Feature
	converted bool
	convErr   error
}

// New classifies a line of text and wraps it as an Entity.
func New(raw string) *Entity {
	return &Entity{Raw: raw, Kind: Classify(raw)}
}

// Features returns the entity as GeoJSON features. A Feature input keeps its
// own properties; a FeatureCollection expands to one feature per member with
// a non-null geometry; every other kind wraps its geometry with empty
// properties.
func (e *Entity) Features() ([]*geojson.Feature, error) {
	if !e.converted {
		e.features, e.convErr = e.convert()
		e.converted = true
	}
	return e.features, e.convErr
}

// Geometries returns the canonical geometries of the entity, one per feature.
func (e *Entity) Geometries() ([]geom.T, error) {
	features, err := e.Features()
	if err != nil {
		return nil, err
	}
	geoms := make([]geom.T, len(features))
	for i, f := range features {
		geoms[i] = f.Geometry
	}
	return geoms, nil
}

// Geometry returns the entity's single canonical geometry. A
// FeatureCollection folds into a GeometryCollection.
func (e *Entity) Geometry() (geom.T, error) {
	geoms, err := e.Geometries()
	if err != nil {
		return nil, err
	}
	if e.Kind == KindGeoJSONFeatureCollection {
		gc := geom.NewGeometryCollection()
		if err := gc.Push(geoms...); err != nil {
			return nil, eris.Wrap(err, "entity: collect geometries")
		}
		return gc, nil
	}
	return geoms[0], nil
}

func (e *Entity) convert() ([]*geojson.Feature, error) {
	trimmed := strings.TrimSpace(e.Raw)

	switch e.Kind {
	case KindLatLon:
		g, err := decodeLatLon(trimmed)
		if err != nil {
			return nil, err
		}
		return wrapBare(g), nil

	case KindGeohash:
		g, err := ghash.BBox(trimmed)
		if err != nil {
			return nil, eris.Wrapf(ErrParse, "invalid geohash %q: %v", trimmed, err)
		}
		return wrapBare(g), nil

	case KindWKT:
		g, err := wkt.Unmarshal(trimmed)
		if err != nil {
			return nil, eris.Wrapf(ErrParse, "invalid WKT %q: %v", trimmed, err)
		}
		return wrapBare(g), nil

	case KindGeoJSONGeometry:
		var g geom.T
		if err := geojson.Unmarshal([]byte(trimmed), &g); err != nil {
			return nil, eris.Wrapf(ErrParse, "invalid GeoJSON geometry %q: %v", trimmed, err)
		}
		return wrapBare(g), nil

	case KindGeoJSONFeature:
		f, err := decodeFeature([]byte(trimmed))
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, eris.Wrapf(ErrMissingGeometry, "feature %q", snippet(trimmed))
		}
		return []*geojson.Feature{f}, nil

	case KindGeoJSONFeatureCollection:
		return decodeFeatureCollection([]byte(trimmed))

	default:
		return nil, eris.Wrapf(ErrUnrecognized, "input %q", snippet(trimmed))
	}
}

func decodeLatLon(text string) (*geom.Point, error) {
	parts := strings.SplitN(text, ",", 2)
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, eris.Wrapf(ErrParse, "latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, eris.Wrapf(ErrParse, "longitude %q", parts[1])
	}
	if lat < -90 || lat > 90 {
		return nil, eris.Wrapf(ErrRange, "latitude %v", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, eris.Wrapf(ErrRange, "longitude %v", lon)
	}
	// LatLon text is lat,lon; canonical coordinate order is (lon, lat).
	return geom.NewPointFlat(geom.XY, []float64{lon, lat}), nil
}

// rawFeature controls null-geometry handling, which the geojson codec's own
// Feature unmarshaling does not.
type rawFeature struct {
	Type       string              `json:"type"`
	Geometry   jsoniter.RawMessage `json:"geometry"`
	Properties map[string]any      `json:"properties"`
}

// decodeFeature returns nil (no error) for an absent or null geometry;
// the caller decides whether that is fatal.
func decodeFeature(data []byte) (*geojson.Feature, error) {
	var rf rawFeature
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, eris.Wrapf(ErrParse, "invalid GeoJSON feature %q: %v", snippet(string(data)), err)
	}
	if len(rf.Geometry) == 0 || string(rf.Geometry) == "null" {
		return nil, nil
	}
	var g geom.T
	if err := geojson.Unmarshal(rf.Geometry, &g); err != nil {
		return nil, eris.Wrapf(ErrParse, "invalid feature geometry %q: %v", snippet(string(rf.Geometry)), err)
	}
	props := rf.Properties
	if props == nil {
		props = map[string]any{}
	}
	return &geojson.Feature{Geometry: g, Properties: props}, nil
}

func decodeFeatureCollection(data []byte) ([]*geojson.Feature, error) {
	var rc struct {
		Type     string                `json:"type"`
		Features []jsoniter.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, eris.Wrapf(ErrParse, "invalid GeoJSON feature collection %q: %v", snippet(string(data)), err)
	}

	features := make([]*geojson.Feature, 0, len(rc.Features))
	for _, rawF := range rc.Features {
		f, err := decodeFeature(rawF)
		if err != nil {
			return nil, err
		}
		if f == nil {
			// Null-geometry members are skipped, not errored.
			zap.L().Debug("entity: skipping feature with null geometry")
			continue
		}
		features = append(features, f)
	}
	return features, nil
}

func wrapBare(g geom.T) []*geojson.Feature {
	return []*geojson.Feature{{Geometry: g, Properties: map[string]any{}}}
}

func snippet(s string) string {
	if len(s) > 48 {
		return s[:48] + "..."
	}
	return s
}
