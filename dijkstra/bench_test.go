package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/evcharge/dijkstra"
)

// denseRing builds an n-node ring with chords so every node has a few
// outgoing edges of varying weight.
func denseRing(b *testing.B, n int) *dijkstra.Graph {
	b.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][(i+1)%n] = 1
		rows[i][(i+7)%n] = 5
		rows[i][(i+n/2)%n] = float64(n) / 3
	}
	g, err := dijkstra.FromTable(rows)
	if err != nil {
		b.Fatalf("FromTable: %v", err)
	}

	return g
}

// BenchmarkShortestDistances_64 measures one O(N²) query on 64 nodes.
func BenchmarkShortestDistances_64(b *testing.B) {
	g := denseRing(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.ShortestDistances(i % 64); err != nil {
			b.Fatalf("ShortestDistances: %v", err)
		}
	}
}

// BenchmarkShortestPath_256 measures relaxation plus the backward walk.
func BenchmarkShortestPath_256(b *testing.B) {
	g := denseRing(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.ShortestPath(0, 255); err != nil {
			b.Fatalf("ShortestPath: %v", err)
		}
	}
}
