package spatial

import (
	sf "github.com/peterstace/simplefeatures/geom"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// The predicate engine keeps its own geometry representation; go-geom values
// cross into it (and back) as WKB. Validation is skipped on ingest since the
// inputs were already accepted by the entity decoders.

func toEngine(g geom.T) (sf.Geometry, error) {
	data, err := wkb.Marshal(g, wkb.NDR)
	if err != nil {
		return sf.Geometry{}, eris.Wrap(err, "spatial: encode WKB")
	}
	sg, err := sf.UnmarshalWKB(data, sf.NoValidate{})
	if err != nil {
		return sf.Geometry{}, eris.Wrap(err, "spatial: load into engine")
	}
	return sg, nil
}

func fromEngine(sg sf.Geometry) (geom.T, error) {
	g, err := wkb.Unmarshal(sg.AsBinary())
	if err != nil {
		return nil, eris.Wrap(err, "spatial: decode WKB")
	}
	return g, nil
}

func sfIntersects(a, b sf.Geometry) bool {
	return sf.Intersects(a, b)
}

func sfContains(a, b sf.Geometry) (bool, error) {
	ok, err := sf.Contains(a, b)
	if err != nil {
		return false, eris.Wrap(err, "spatial: contains")
	}
	return ok, nil
}
