// Package grid computes the screen command sequences that lay out a
// width x height array of windows and that address those windows by index.
//
// This package is pure: it never talks to a multiplexer. It only produces
// ordered []Op values. Issuing them is the job of internal/array, which
// feeds each Op to a mux.Sink strictly in order.
//
// Window indices are row-major: index i sits in row i/width, column i%width.
// Index 0 is the window the session already shows before the layout runs.
package grid

import (
	"errors"
	"fmt"
)

// Default dimensions used when the caller does not pick any.
const (
	DefaultWidth  = 3
	DefaultHeight = 3
)

var (
	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrMaskOutOfRange is returned when a visit mask names an index outside the grid.
	ErrMaskOutOfRange = errors.New("mask index out of range")
	// ErrInvalidMask is returned when a mask expression cannot be parsed.
	ErrInvalidMask = errors.New("invalid mask")
	// ErrUnsupportedSplit is returned by Cursor for a horizontal split it cannot model.
	ErrUnsupportedSplit = errors.New("unsupported split")
)

// Grid is an immutable width x height window array.
type Grid struct {
	width  int
	height int
}

// New validates the dimensions and returns a Grid.
func New(width, height int) (*Grid, error) {
	if err := validate(width, height); err != nil {
		return nil, err
	}
	return &Grid{width: width, height: height}, nil
}

func validate(width, height int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width (%d) <= 0", ErrInvalidDimension, width)
	}
	if height <= 0 {
		return fmt.Errorf("%w: height (%d) <= 0", ErrInvalidDimension, height)
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Capacity returns the number of windows in the grid.
func (g *Grid) Capacity() int { return g.width * g.height }

// Position returns the row and column of window index i.
func (g *Grid) Position(i int) Position {
	return Position{Row: i / g.width, Col: i % g.width}
}

// Contains reports whether i is a valid window index.
func (g *Grid) Contains(i int) bool {
	return i >= 0 && i < g.Capacity()
}

// Layout returns the op sequence that builds this grid.
func (g *Grid) Layout() []Op {
	return build(g.width, g.height)
}

func (g *Grid) String() string {
	return fmt.Sprintf("%d x %d", g.height, g.width)
}

// Position is a cell in the grid.
type Position struct {
	Row int
	Col int
}
