// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrFormat is matched by every input-shape or input-content error.
	ErrFormat = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrFormat)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrFormat)
	// ErrInvalidDigit indicates a character that is not an ASCII decimal digit.
	ErrInvalidDigit = fmt.Errorf("%w: cell is not a decimal digit", ErrFormat)
	// ErrNegativeCost indicates a negative traversal cost.
	ErrNegativeCost = fmt.Errorf("%w: cell cost must be non-negative", ErrFormat)
	// ErrBadPath indicates a route that leaves the grid or is not a chain of unit moves.
	ErrBadPath = errors.New("gridgraph: path is not a chain of in-bounds unit moves")
)

// Position is a 0-indexed (Row, Col) cell coordinate.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// GridGraph treats a 2D cost matrix as a graph. It is immutable once built.
// Width and Height define dimensions; cells holds costs in row-major order.
type GridGraph struct {
	Width, Height int
	cells         []int
}
