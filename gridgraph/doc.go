// Package gridgraph treats a rectangular block of per-cell traversal costs as
// a graph whose vertices are cells and whose edges are the four orthogonal moves.
//
// What:
//
//   - GridGraph wraps an immutable, rectangular cost matrix (row-major, dense).
//   - Position and Direction describe cells and unit moves; Direction is a closed
//     set of four values with total Opposite/Perpendicular/Delta mappings.
//   - Parse decodes text rows of ASCII digits ('0'..'9') into a GridGraph.
//   - PathCost sums the cost of a route, charging every entered cell.
//
// Why:
//
//   - Route-finding engines need O(1) cost and bounds lookups with no hashing.
//   - A dense row-major layout lets callers key auxiliary tables by Index(p).
//
// Complexity:
//
//   - NewGridGraph / Parse: O(W×H) time and memory.
//   - Cost, InBounds, Index, Coordinate: O(1).
//   - PathCost: O(len(path)).
//
// Errors:
//
//   - ErrFormat: umbrella for every malformed-input error below (errors.Is).
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit: a character outside '0'..'9'.
//   - ErrNegativeCost: a negative value passed to NewGridGraph.
//   - ErrBadPath: PathCost received a route that is not a chain of unit moves.
package gridgraph
