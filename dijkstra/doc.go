// Package dijkstra is the graph engine of evcharge: a dense, index-addressed
// weighted digraph with single-source shortest distances and two-node path
// reconstruction.
//
// Overview:
//
//   - Nodes are dense integer indices 0..N-1, one per location.
//   - Edge weights live in an N×N matrix.Dense; +Inf means "no edge".
//     A per-node adjacency list (load order) is derived once at build time.
//   - ShortestDistances runs the classic O(N²) selection variant of Dijkstra:
//     no priority queue, N−1 rounds of "pick the closest unvisited node, relax
//     its neighbours". For the tens of locations this engine targets, a
//     linear scan beats heap bookkeeping.
//   - ShortestPath reruns the relaxation and walks backwards from the
//     destination, choosing at each step the first predecessor p (ascending
//     index) with dist[cur] == dist[p] + W[p][cur].
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:   NewGraph was given a nil weight matrix.
//   - ErrOutOfRange:  a node index outside [0, N) was passed to a query.
//   - ErrNoPath:      the destination is not reachable from the origin.
//   - ErrEmptyPath:   PathCost was given an empty path.
//   - ErrNoEdge:      PathCost found two consecutive nodes without an edge.
//
// Negative weights are rejected upstream by matrix.NewWeightMatrix; a Graph
// built from a hand-filled Dense with negative cells is undefined behaviour.
//
// Thread safety:
//
//   - A Graph is immutable after NewGraph. Any number of goroutines may query
//     it concurrently; every query allocates its own scratch state.
//
// Complexity:
//
//   - ShortestDistances: O(N²) time, O(N) space.
//   - ShortestPath:      O(N²) time, O(N) space.
//
// Example usage:
//
//	g, err := dijkstra.FromTable([][]float64{
//	    {0, 10, 100},
//	    {0, 0, 5},
//	    {0, 0, 0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := g.ShortestPath(0, 2) // [0 1 2]
package dijkstra
