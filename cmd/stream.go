package main

import (
	"io"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/gsq/internal/entity"
)

// Shared plumbing for commands that walk STDIN entity by entity. Per-item
// conversion errors propagate and abort the run with exit code 1; only
// `filter` recovers per item.

func eachEntity(r io.Reader, fn func(*entity.Entity) error) error {
	return entity.NewStream(r).Each(fn)
}

func eachGeometry(r io.Reader, fn func(geom.T) error) error {
	return eachEntity(r, func(e *entity.Entity) error {
		geoms, err := e.Geometries()
		if err != nil {
			return err
		}
		for _, g := range geoms {
			if err := fn(g); err != nil {
				return err
			}
		}
		return nil
	})
}

func eachFeature(r io.Reader, fn func(*geojson.Feature) error) error {
	return eachEntity(r, func(e *entity.Entity) error {
		features, err := e.Features()
		if err != nil {
			return err
		}
		for _, f := range features {
			if err := fn(f); err != nil {
				return err
			}
		}
		return nil
	})
}
