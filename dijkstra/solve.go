package dijkstra

import (
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// Solve parses lines with gridgraph.Parse and runs Search under p.
func Solve(lines []string, p movement.Policy, opts ...Option) (Result, error) {
	g, err := gridgraph.Parse(lines)
	if err != nil {
		return Result{}, err
	}
	return Search(g, p, opts...)
}

// SolveShortRun returns the minimal route cost under movement.ShortRun:
// turns allowed after 1 step, forced after 3.
func SolveShortRun(lines []string, opts ...Option) (int, error) {
	res, err := Solve(lines, movement.ShortRun, opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// SolveLongRun returns the minimal route cost under movement.LongRun:
// turns forbidden before 4 steps, forced after 10.
func SolveLongRun(lines []string, opts ...Option) (int, error) {
	res, err := Solve(lines, movement.LongRun, opts...)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}
