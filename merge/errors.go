package merge

import (
	"errors"
	"fmt"

	"deedles.dev/xgeom/geom"
)

var (
	// ErrEmpty is returned when merging an empty collection.
	ErrEmpty = errors.New("no rectangles to merge")

	// ErrNotAdjacent is returned when two rectangles do not share a
	// complete edge in the direction being merged.
	ErrNotAdjacent = errors.New("rectangles are not adjacent")
)

// PairError reports the step of a fold at which the accumulated
// rectangle and the next element could not be merged. It matches
// ErrNotAdjacent.
type PairError struct {
	// Index is the index of Next in the collection being merged.
	Index int

	Acc  geom.Rectangle
	Next geom.Rectangle
}

func (err *PairError) Error() string {
	return fmt.Sprintf("merge %v with element %d %v: %v", err.Acc, err.Index, err.Next, ErrNotAdjacent)
}

func (err *PairError) Unwrap() error {
	return ErrNotAdjacent
}
