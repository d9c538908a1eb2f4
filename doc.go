// Package crucible finds minimum-cost routes across grids of traversal costs
// for a traveller that may never reverse and must respect bounds on how many
// consecutive moves it makes in one direction.
//
// What is in the box:
//
//	gridgraph/    immutable cost grid, Position, the closed Direction set, digit parsing
//	movement/     run-length policies: ShortRun (1..3), LongRun (4..10), custom bounds
//	dijkstra/     generalized Dijkstra over (position, direction, run) states
//	cmd/crucible  command-line front end (HCL config, slog logging)
//
// Quick example:
//
//	cost, err := dijkstra.SolveLongRun(lines)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // no route satisfies the run bounds
//	}
//
// Plain Dijkstra over cells is wrong here: whether a move is legal depends
// on how the traveller arrived, so the searched graph's nodes carry the
// direction and run length alongside the position.
//
//	go get github.com/katalvlaran/crucible
package crucible
