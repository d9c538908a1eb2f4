package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/movement"
)

// benchmarkSearch runs Search on a random n×n grid under p.
func benchmarkSearch(b *testing.B, n int, p movement.Policy) {
	g := mustParse(b, randomLines(42, n, n))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, p); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_ShortRun141 benchmarks a puzzle-sized grid in short-run mode.
func BenchmarkSearch_ShortRun141(b *testing.B) { benchmarkSearch(b, 141, movement.ShortRun) }

// BenchmarkSearch_LongRun141 benchmarks a puzzle-sized grid in long-run mode.
func BenchmarkSearch_LongRun141(b *testing.B) { benchmarkSearch(b, 141, movement.LongRun) }
