// Package dijkstra_test provides runnable examples for the constrained search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// ExampleSolveShortRun solves the 13×13 reference grid in both modes.
func ExampleSolveShortRun() {
	short, err := dijkstra.SolveShortRun(referenceGrid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	long, err := dijkstra.SolveLongRun(referenceGrid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("short:", short, "long:", long)
	// Output: short: 102 long: 94
}

// ExampleSearch reconstructs the cheapest route on a tiny grid.
func ExampleSearch() {
	g, _ := gridgraph.Parse([]string{
		"19",
		"11",
	})
	res, err := dijkstra.Search(g, movement.ShortRun, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost", res.Cost, "via", res.Path)
	// Output: cost 2 via [(0,0) (1,0) (1,1)]
}

// ExampleSearch_unreachable shows that exhaustion is an error, never a zero cost.
func ExampleSearch_unreachable() {
	g, _ := gridgraph.Parse([]string{"12", "34"})
	_, err := dijkstra.Search(g, movement.LongRun)
	fmt.Println(err)
	// Output: dijkstra: target unreachable under movement constraints
}
