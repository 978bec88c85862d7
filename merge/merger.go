package merge

import (
	"fmt"
	"io"
	"iter"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xiter"
	"github.com/charmbracelet/log"
)

var defaultMerger = New()

// Merger folds collections of rectangles into single rectangles. A
// Merger is not modified after New returns and may be used
// concurrently.
type Merger struct {
	logger *log.Logger
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger that a Merger reports to. Each merged
// pair is logged at debug level and each rejected pair at warn level.
// By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(m *Merger) {
		m.logger = logger
	}
}

// New returns a Merger configured by opts.
func New(opts ...Option) *Merger {
	m := Merger{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return &m
}

// All folds rects from left to right into a single rectangle. The
// first element starts the fold. Each following element is merged into
// the accumulated rectangle, horizontally if it sits directly below
// the accumulator and otherwise vertically if it sits directly to its
// right.
//
// The fold is order sensitive: rects is expected to list the pieces of
// one larger rectangle from left to right and top to bottom. If rects
// is empty, the returned error is ErrEmpty. If some element can not be
// merged, the returned error is a *PairError.
func (m *Merger) All(rects geom.Rectangles) (geom.Rectangle, error) {
	return m.fold(rects.All())
}

// Seq is the same as [Merger.All] but folds the rectangles yielded by
// seq. It stops pulling from seq at the first error.
func (m *Merger) Seq(seq iter.Seq[geom.Rectangle]) (geom.Rectangle, error) {
	return m.fold(xiter.Enumerate(seq))
}

func (m *Merger) fold(seq iter.Seq2[int, geom.Rectangle]) (acc geom.Rectangle, err error) {
	empty := true
	for i, r := range seq {
		if !r.IsValid() {
			return geom.Rectangle{}, fmt.Errorf("element %d %v: %w", i, r, geom.ErrInvalidDimensions)
		}

		if empty {
			acc, empty = r, false
			continue
		}

		acc, err = m.step(i, acc, r)
		if err != nil {
			return geom.Rectangle{}, err
		}
	}
	if empty {
		return geom.Rectangle{}, ErrEmpty
	}

	return acc, nil
}

func (m *Merger) step(i int, acc, next geom.Rectangle) (geom.Rectangle, error) {
	var (
		r   geom.Rectangle
		err error
	)

	edges := acc.Abuts(next)
	switch {
	case edges&geom.EdgeBottom != 0:
		r, err = horizontally(acc, next)
		edges = geom.EdgeBottom
	case edges&geom.EdgeRight != 0:
		r, err = vertically(acc, next)
		edges = geom.EdgeRight
	default:
		m.logger.Warn("rejected pair", "index", i, "acc", acc, "next", next, "edges", edges)
		return geom.Rectangle{}, &PairError{Index: i, Acc: acc, Next: next}
	}
	if err != nil {
		return geom.Rectangle{}, fmt.Errorf("element %d: %w", i, err)
	}

	m.logger.Debug("merged", "index", i, "edge", edges, "result", r)
	return r, nil
}
