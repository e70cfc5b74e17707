// Package filter selects stream entities by spatial relationship to a fixed
// set of query geometries.
package filter

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/sells-group/gsq/internal/entity"
	"github.com/sells-group/gsq/internal/spatial"
)

// Predicate is the spatial relationship a stream entity is tested for.
type Predicate int

const (
	// PredicateIntersects passes entities sharing at least one point with a query.
	PredicateIntersects Predicate = iota
	// PredicateContains passes entities lying entirely within a query.
	PredicateContains
)

// String returns the predicate's subcommand name.
func (p Predicate) String() string {
	if p == PredicateContains {
		return "contains"
	}
	return "intersects"
}

// ErrEmptyQuery marks a filter run configured with no query entities.
var ErrEmptyQuery = eris.New("filter: no query entities given")

// Query is one eagerly-converted query entity.
type Query struct {
	Entity *entity.Entity
	Geoms  []geom.T
}

// QuerySet is the fixed, read-only set of geometries a stream is filtered
// against. Construction converts every query eagerly: a bad query is a user
// error and fatal, unlike a bad stream line.
type QuerySet struct {
	queries []Query
}

// NewQuerySet builds a query set from an optional single-entity argument and
// an optional query file of one entity per non-blank line.
func NewQuerySet(arg string, queryFile io.Reader) (*QuerySet, error) {
	var qs QuerySet

	if arg != "" {
		if err := qs.add(entity.New(arg)); err != nil {
			return nil, err
		}
	}

	if queryFile != nil {
		stream := entity.NewStream(queryFile)
		if err := stream.Each(qs.add); err != nil {
			return nil, err
		}
	}

	if len(qs.queries) == 0 {
		return nil, eris.Wrap(ErrEmptyQuery, "provide a query argument or --query-file")
	}
	return &qs, nil
}

func (qs *QuerySet) add(e *entity.Entity) error {
	geoms, err := e.Geometries()
	if err != nil {
		return eris.Wrapf(err, "filter: convert query %q", e.Raw)
	}
	qs.queries = append(qs.queries, Query{Entity: e, Geoms: geoms})
	return nil
}

// Len returns the number of query entities.
func (qs *QuerySet) Len() int {
	return len(qs.queries)
}

// RequirePolygons enforces the contains precondition: every query geometry
// must be a Polygon or MultiPolygon.
func (qs *QuerySet) RequirePolygons() error {
	for _, q := range qs.queries {
		for _, g := range q.Geoms {
			switch g.(type) {
			case *geom.Polygon, *geom.MultiPolygon:
			default:
				return eris.Wrapf(spatial.ErrUnsupportedPredicate,
					"query %q is %T", q.Entity.Raw, g)
			}
		}
	}
	return nil
}

// Run pulls the stream through the predicate and writes the raw text of
// every passing entity to w, preserving input order. An entity passes when
// any of its geometries satisfies the predicate against any query geometry;
// negate inverts the result after that OR. Stream entities that fail to
// convert are dropped with a diagnostic, never fatally.
func Run(stream *entity.Stream, qs *QuerySet, pred Predicate, negate bool, w io.Writer) error {
	return stream.Each(func(e *entity.Entity) error {
		geoms, err := e.Geometries()
		if err != nil {
			zap.L().Warn("filter: dropping entity",
				zap.String("input", e.Raw),
				zap.Error(err),
			)
			return nil
		}

		match, err := qs.matches(geoms, pred)
		if err != nil {
			zap.L().Warn("filter: dropping entity",
				zap.String("input", e.Raw),
				zap.Error(err),
			)
			return nil
		}

		if match != negate {
			if _, err := fmt.Fprintln(w, e.Raw); err != nil {
				return eris.Wrap(err, "filter: write output")
			}
		}
		return nil
	})
}

func (qs *QuerySet) matches(geoms []geom.T, pred Predicate) (bool, error) {
	for _, g := range geoms {
		for _, q := range qs.queries {
			for _, qg := range q.Geoms {
				var (
					ok  bool
					err error
				)
				switch pred {
				case PredicateContains:
					ok, err = spatial.Contains(qg, g)
				default:
					ok, err = spatial.Intersects(g, qg)
				}
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
		}
	}
	return false, nil
}
