package dijkstra_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// referenceGrid is the 13×13 scenario with known answers 102 (short) / 94 (long).
var referenceGrid = strings.Split(strings.TrimSpace(`
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`), "\n")

// guardGrid separates guarded (71) from unguarded (47) long-run answers.
var guardGrid = []string{
	"111111111111",
	"999999999991",
	"999999999991",
	"999999999991",
	"999999999991",
}

// randomLines builds a deterministic rows×cols digit block.
func randomLines(seed int64, rows, cols int) []string {
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, rows)
	buf := make([]byte, cols)
	for y := range lines {
		for x := range buf {
			buf[x] = byte('1' + rng.Intn(9))
		}
		lines[y] = string(buf)
	}
	return lines
}

// mustParse fails the test on malformed input.
func mustParse(t testing.TB, lines []string) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.Parse(lines)
	require.NoError(t, err)
	return g
}

// requireCompliantRoute checks a returned route against the policy it was found under.
func requireCompliantRoute(t *testing.T, g *gridgraph.GridGraph, p movement.Policy, guard bool, path []gridgraph.Position, cost int) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.Start(), path[0], "route must begin at the start cell")
	require.Equal(t, g.Target(), path[len(path)-1], "route must end at the target cell")

	got, err := g.PathCost(path)
	require.NoError(t, err)
	require.Equal(t, cost, got, "route cost must equal the reported cost")

	run := 0
	var last gridgraph.Direction
	for i := 1; i < len(path); i++ {
		d, ok := gridgraph.Between(path[i-1], path[i])
		require.True(t, ok)
		switch {
		case run == 0:
			if !p.FreeStart() {
				require.Contains(t, p.InitialHeadings(), d, "first move %v is not an initial heading", d)
			}
			run = 1
		case d == last:
			run++
		default:
			require.NotEqual(t, last.Opposite(), d, "reversal at step %d", i)
			require.GreaterOrEqual(t, run, p.RunMin, "turn after a run of %d at step %d", run, i)
			run = 1
		}
		require.LessOrEqual(t, run, p.RunMax, "run exceeds max at step %d", i)
		last = d
	}
	if guard && len(path) > 1 {
		require.GreaterOrEqual(t, run, p.RunMin, "route ends with a short run")
	}
}

// relaxationCost is an independent reference: Bellman-Ford style relaxation
// over (cell, direction, run) until no distance improves.
func relaxationCost(g *gridgraph.GridGraph, p movement.Policy) (int, bool) {
	const inf = int(^uint(0) >> 1)
	type key struct {
		pos gridgraph.Position
		dir gridgraph.Direction
		run int
	}
	dist := map[key]int{}
	if p.FreeStart() {
		for _, d := range gridgraph.Directions {
			next := g.Start().Step(d)
			if g.InBounds(next) {
				dist[key{next, d, 1}] = g.Cost(next)
			}
		}
	} else {
		for _, d := range p.InitialHeadings() {
			dist[key{g.Start(), d, 0}] = 0
		}
	}

	for changed := true; changed; {
		changed = false
		for k, c := range dist {
			for _, d := range p.Allowed(nil, k.dir, k.run, true) {
				next := k.pos.Step(d)
				if !g.InBounds(next) {
					continue
				}
				run := 1
				if d == k.dir {
					run = k.run + 1
				}
				nk := key{next, d, run}
				nc := c + g.Cost(next)
				if old, ok := dist[nk]; !ok || nc < old {
					dist[nk] = nc
					changed = true
				}
			}
		}
	}

	if g.Start() == g.Target() {
		return 0, true
	}
	best := inf
	for k, c := range dist {
		if k.pos == g.Target() && k.run >= p.RunMin && c < best {
			best = c
		}
	}
	return best, best != inf
}
