package dijkstra

import (
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// successor is a legal next state and the cost of entering its cell.
type successor struct {
	state State
	cost  int
}

// stateSpace generates successors of States on one grid under one policy.
type stateSpace struct {
	g      *gridgraph.GridGraph
	policy movement.Policy
	dirs   []gridgraph.Direction // scratch for policy.Allowed
}

func newStateSpace(g *gridgraph.GridGraph, p movement.Policy) *stateSpace {
	return &stateSpace{
		g:      g,
		policy: p,
		dirs:   make([]gridgraph.Direction, 0, gridgraph.NumDirections),
	}
}

// headed reports whether s has a direction that constrains its next move.
func (sp *stateSpace) headed(s State) bool {
	return s.Run > 0 || !sp.policy.FreeStart()
}

// seeds returns the origin states the search starts from.
func (sp *stateSpace) seeds() []State {
	start := sp.g.Start()
	headings := sp.policy.InitialHeadings()
	if len(headings) == 0 {
		return []State{{Pos: start}}
	}
	out := make([]State, 0, len(headings))
	for _, d := range headings {
		out = append(out, State{Pos: start, Dir: d})
	}
	return out
}

// successors appends to dst every legal, in-bounds successor of s.
// A headed state yields at most 3: never the reversal, never a run past RunMax.
func (sp *stateSpace) successors(dst []successor, s State) []successor {
	sp.dirs = sp.policy.Allowed(sp.dirs[:0], s.Dir, s.Run, sp.headed(s))
	for _, d := range sp.dirs {
		next := s.Pos.Step(d)
		if !sp.g.InBounds(next) {
			continue
		}
		run := 1
		if d == s.Dir {
			run = s.Run + 1
		}
		dst = append(dst, successor{
			state: State{Pos: next, Dir: d, Run: run},
			cost:  sp.g.Cost(next),
		})
	}
	return dst
}

// isTarget reports whether s may end the route.
func (sp *stateSpace) isTarget(s State, guard bool) bool {
	if s.Pos != sp.g.Target() {
		return false
	}
	return !guard || sp.policy.CanStop(s.Run, sp.headed(s))
}

// settledTable is a dense set of States keyed by (cell, direction, run).
type settledTable struct {
	seen   []bool
	stride int // run slots per (cell, direction)
}

// newSettledTable sizes the run dimension by min(runMax, span)+1, where span
// is the longer grid side: a straight run inside the grid never exceeds span-1.
func newSettledTable(cells, runMax, span int) *settledTable {
	stride := min(runMax, span) + 1
	return &settledTable{
		seen:   make([]bool, cells*gridgraph.NumDirections*stride),
		stride: stride,
	}
}

// key maps a state to its slot. cell is the state's row-major cell index.
func (t *settledTable) key(cell int, s State) int {
	return (cell*gridgraph.NumDirections+int(s.Dir))*t.stride + s.Run
}

// cell recovers the row-major cell index from a slot.
func (t *settledTable) cell(key int) int {
	return key / t.stride / gridgraph.NumDirections
}

// settled reports whether the slot has been finalized.
func (t *settledTable) settled(key int) bool { return t.seen[key] }

// settle marks the slot finalized.
func (t *settledTable) settle(key int) { t.seen[key] = true }
