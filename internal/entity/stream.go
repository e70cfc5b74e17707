package entity

import (
	"bufio"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// maxLineBytes bounds a single input record; GeoJSON FeatureCollections on
// one line can run to megabytes.
const maxLineBytes = 16 * 1024 * 1024

// Stream produces Entities from newline-delimited text, one per non-blank
// line. It is lazy, single-pass, and never aborts on a line it cannot make
// sense of: classification is total, and conversion failures belong to the
// entity, not the stream.
type Stream struct {
	sc  *bufio.Scanner
	err error
}

// NewStream wraps a reader as an entity stream.
func NewStream(r io.Reader) *Stream {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Stream{sc: sc}
}

// Next returns the next entity, or false when the source is exhausted.
func (s *Stream) Next() (*Entity, bool) {
	for s.sc.Scan() {
		line := s.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return New(line), true
	}
	if err := s.sc.Err(); err != nil {
		s.err = eris.Wrap(err, "entity: read input")
	}
	return nil, false
}

// Err reports a read failure on the underlying source, if any.
func (s *Stream) Err() error {
	return s.err
}

// Each pulls the whole stream through fn, stopping on the first error.
func (s *Stream) Each(fn func(*Entity) error) error {
	for {
		e, ok := s.Next()
		if !ok {
			break
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return s.Err()
}
