// Package dijkstra_test provides runnable examples for the graph engine.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evcharge/dijkstra"
)

// ExampleGraph_ShortestDistances uses the detour scenario: the direct road
// 0→2 costs 100, the detour through 1 costs 15.
func ExampleGraph_ShortestDistances() {
	g, err := dijkstra.FromTable([][]float64{
		{0, 10, 100},
		{0, 0, 5},
		{0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, _ := g.ShortestDistances(0)
	fmt.Println(dist)
	// Output: [0 10 15]
}

// ExampleGraph_ShortestPath reconstructs the detour and shows the explicit
// "no path" result for a one-way network.
func ExampleGraph_ShortestPath() {
	g, _ := dijkstra.FromTable([][]float64{
		{0, 10, 100},
		{0, 0, 5},
		{0, 0, 0},
	})

	path, _ := g.ShortestPath(0, 2)
	fmt.Println(path)

	_, err := g.ShortestPath(2, 0)
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))
	// Output:
	// [0 1 2]
	// true
}
