// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleParse decodes a digit block and walks a hand-made route.
func ExampleParse() {
	gg, err := gridgraph.Parse([]string{
		"241",
		"321",
		"325",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route := []gridgraph.Position{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	cost, _ := gg.PathCost(route)
	fmt.Printf("%dx%d grid, target %v, route cost %d\n", gg.Height, gg.Width, gg.Target(), cost)
	// Output: 3x3 grid, target (2,2), route cost 11
}

// ExampleDirection shows the total direction mappings.
func ExampleDirection() {
	for _, d := range gridgraph.Directions {
		fmt.Println(d, "opposite", d.Opposite(), "turns", d.Perpendicular())
	}
	// Output:
	// up opposite down turns [left right]
	// down opposite up turns [left right]
	// left opposite right turns [up down]
	// right opposite left turns [up down]
}
