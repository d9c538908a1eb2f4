// Package dijkstra finds minimum-cost routes across a gridgraph.GridGraph for a
// traveller whose moves are governed by a movement.Policy.
//
// Overview:
//
//   - The graph searched is not the grid itself but its augmentation: each node
//     is a State (position, last direction, run length), because whether a move
//     is legal depends on how the traveller arrived. Two states at the same cell
//     with different run lengths are different nodes.
//   - Search runs a generalized Dijkstra over that state space from the top-left
//     cell and stops the first time a state at the bottom-right cell is settled.
//   - Entering a cell costs that cell's value; the starting cell is free.
//
// State machine:
//
//	Running ──pop settled state──▶ Running   (stale duplicate, discarded)
//	Running ──pop target state───▶ Found     (Result.Cost is minimal)
//	Running ──frontier empty─────▶ Exhausted (ErrUnreachable)
//
// Seeding:
//
//   - FreeStart policies (RunMin <= 1) seed one origin with no heading.
//   - Other policies seed one origin per initial heading (Right, Down) with a
//     zero-length run so RunMin binds from the first move.
//
// Data structures:
//
//   - Frontier: container/heap min-heap of (cost, state) entries, keyed by cost only.
//     Improvements are pushed as duplicates ("lazy decrease-key").
//   - Settled table: dense []bool of size cells × 4 × (RunMax+1) indexed by
//     (cell, direction, run). No hashing.
//
// Complexity (S = W·H·4·(RunMax+1) states, each with at most 3 successors):
//
//   - Time:  O(S log S)
//   - Space: O(S)
//
// Options:
//
//   - WithReturnPath():         also return the cell sequence of the optimal route.
//   - WithTerminalGuard(bool):  require RunMin consecutive moves before stopping (default true).
//   - WithMaxCost(int):         stop exploring past a cost ceiling.
//   - WithContext(ctx):         cooperative cancellation between pops.
//   - WithLogger(*slog.Logger): one Debug summary per search.
//
// Errors (sentinel):
//
//   - ErrNilGrid:     Search was given a nil grid.
//   - ErrUnreachable: the frontier emptied (or hit MaxCost) before the target settled.
//   - ErrBadMaxCost:  WithMaxCost received a negative ceiling (panics).
//   - movement.ErrBadRunBounds and gridgraph.ErrFormat pass through unchanged.
//
// Thread safety:
//
//   - A search owns its frontier and settled table; the grid is only read.
//     Concurrent searches over the same *gridgraph.GridGraph are safe.
package dijkstra
