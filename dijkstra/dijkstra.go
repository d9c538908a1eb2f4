package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// cancelCheckMask sets how often (in pops) the context is polled.
const cancelCheckMask = 1<<10 - 1

// Search computes the minimum cost of travelling from g.Start() to g.Target()
// under policy p. The cost of a route is the sum of the cells it enters.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. p must have valid bounds (movement.ErrBadRunBounds).
//
// Returns ErrUnreachable if the frontier empties, or every remaining entry
// exceeds MaxCost, before a target state settles. A cancelled context aborts
// the search with an error wrapping ctx.Err().
//
// Complexity:
//
//   - Time:  O(S log S), S = W·H·4·(min(RunMax, max(W,H))+1)
//   - Space: O(S)
func Search(g *gridgraph.GridGraph, p movement.Policy, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	// 3) Run
	r := newRunner(g, p, cfg)
	r.init()
	res, err := r.process()
	r.log(res, err)

	return res, err
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.GridGraph
	space   *stateSpace
	options Options
	settled *settledTable
	parent  []int // slot → predecessor slot, -1 for origins; nil unless ReturnPath
	pq      frontier
	next    []successor // scratch for successors
	stats   Stats
}

func newRunner(g *gridgraph.GridGraph, p movement.Policy, cfg Options) *runner {
	r := &runner{
		g:       g,
		space:   newStateSpace(g, p),
		options: cfg,
		settled: newSettledTable(g.Cells(), p.RunMax, max(g.Height, g.Width)),
		pq:      make(frontier, 0, g.Cells()),
		next:    make([]successor, 0, gridgraph.NumDirections),
	}
	if cfg.ReturnPath {
		r.parent = make([]int, len(r.settled.seen))
	}
	return r
}

// init seeds the frontier with the origin state(s) at cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range r.space.seeds() {
		r.push(0, s, -1)
	}
}

// push enqueues s at the given cost, remembering the slot it was reached from.
func (r *runner) push(cost int, s State, from int) {
	heap.Push(&r.pq, entry{
		cost:   cost,
		state:  s,
		key:    r.settled.key(r.g.Index(s.Pos), s),
		parent: from,
	})
	r.stats.Pushed++
	if n := r.pq.Len(); n > r.stats.PeakFrontier {
		r.stats.PeakFrontier = n
	}
}

// process is the main loop: pop the cheapest entry, discard it if stale,
// settle it, stop at the target, otherwise expand it.
func (r *runner) process() (Result, error) {
	ctx := r.options.Context
	for pops := 0; r.pq.Len() > 0; pops++ {
		if pops&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Stats: r.stats}, fmt.Errorf("dijkstra: search aborted: %w", err)
			}
		}

		// 1) Pop the smallest-cost entry.
		e := heap.Pop(&r.pq).(entry)

		// 2) Stale duplicate of an already-finalized state.
		if r.settled.settled(e.key) {
			r.stats.Stale++
			continue
		}

		// 3) Everything left is past the ceiling.
		if e.cost > r.options.MaxCost {
			break
		}

		// 4) Finalize.
		r.settled.settle(e.key)
		r.stats.Settled++
		if r.parent != nil {
			r.parent[e.key] = e.parent
		}

		// 5) Target reached.
		if r.space.isTarget(e.state, r.options.TerminalGuard) {
			res := Result{Cost: e.cost, Final: e.state, Stats: r.stats}
			if r.parent != nil {
				res.Path = r.path(e.key)
			}
			return res, nil
		}

		// 6) Expand.
		r.relax(e)
	}

	return Result{Stats: r.stats}, ErrUnreachable
}

// relax pushes every unsettled successor of e.
func (r *runner) relax(e entry) {
	r.next = r.space.successors(r.next[:0], e.state)
	for _, nb := range r.next {
		if r.settled.settled(r.settled.key(r.g.Index(nb.state.Pos), nb.state)) {
			continue
		}
		r.push(e.cost+nb.cost, nb.state, e.key)
	}
}

// path walks parent slots back from key to an origin.
func (r *runner) path(key int) []gridgraph.Position {
	var rev []gridgraph.Position
	for k := key; k >= 0; k = r.parent[k] {
		rev = append(rev, r.g.Coordinate(r.settled.cell(k)))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// log emits the per-search summary.
func (r *runner) log(res Result, err error) {
	l := r.options.Logger
	if l == nil {
		return
	}
	attrs := []any{
		"policy", r.space.policy.String(),
		"rows", r.g.Height,
		"cols", r.g.Width,
		"settled", r.stats.Settled,
		"pushed", r.stats.Pushed,
		"stale", r.stats.Stale,
		"peak_frontier", r.stats.PeakFrontier,
	}
	if err != nil {
		l.Debug("search failed", append(attrs, "error", err)...)
		return
	}
	l.Debug("search found route", append(attrs, "cost", res.Cost, "final_run", res.Final.Run)...)
}

// entry is a frontier item: a state and the cost of the route that reached it.
type entry struct {
	cost   int
	state  State
	key    int // settled-table slot of state
	parent int // slot of the predecessor, -1 for origins
}

// frontier is a min-heap of entries ordered by cost ascending. Ties are
// broken arbitrarily. Stale duplicates are filtered at pop time.
type frontier []entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq frontier) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
