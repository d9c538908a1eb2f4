package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice of
// non-negative costs. It copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost on a negative cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, y, x, v)
			}
		}
		cells = append(cells, row...)
	}

	return &GridGraph{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Cost returns the traversal cost of entering p.
// Like a slice index, it panics when p is out of bounds; check InBounds first.
func (gg *GridGraph) Cost(p Position) int {
	if !gg.InBounds(p) {
		panic(fmt.Sprintf("gridgraph: position %v outside %dx%d grid", p, gg.Height, gg.Width))
	}
	return gg.cells[gg.Index(p)]
}

// Start is the top-left cell.
func (gg *GridGraph) Start() Position { return Position{} }

// Target is the bottom-right cell.
func (gg *GridGraph) Target() Position {
	return Position{Row: gg.Height - 1, Col: gg.Width - 1}
}

// Cells returns Width×Height.
func (gg *GridGraph) Cells() int { return len(gg.cells) }

// Index maps p to a row‑major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(p Position) int {
	return p.Row*gg.Width + p.Col
}

// Coordinate converts a row‑major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Position {
	return Position{Row: idx / gg.Width, Col: idx % gg.Width}
}

// PathCost returns the total cost of walking path, charging the cost of every
// cell entered after path[0]. An empty or single-cell path costs 0.
// Returns ErrBadPath if a position is out of bounds or two consecutive
// positions are not orthogonal neighbours.
func (gg *GridGraph) PathCost(path []Position) (int, error) {
	total := 0
	for i, p := range path {
		if !gg.InBounds(p) {
			return 0, fmt.Errorf("%w: %v at step %d is out of bounds", ErrBadPath, p, i)
		}
		if i == 0 {
			continue
		}
		if _, ok := Between(path[i-1], p); !ok {
			return 0, fmt.Errorf("%w: %v -> %v at step %d", ErrBadPath, path[i-1], p, i)
		}
		total += gg.cells[gg.Index(p)]
	}
	return total, nil
}
