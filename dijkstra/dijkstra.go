// The O(N²) selection form of Dijkstra's algorithm over a dense weight
// matrix. Notes on implementation choices:
//
//   - Tentative distances start at the direct edge weights from the source
//     (or +Inf) and the source itself at 0, so the first round already
//     knows every one-hop neighbour.
//   - Node selection scans indices in ascending order and only accepts a
//     strictly smaller distance, so ties resolve to the lowest index.
//   - The loop stops early once no unvisited node has a finite distance:
//     the remaining rounds could not change anything.
//   - The visited set is a sparse set; membership tests are O(1) and the
//     set is allocated per query, keeping Graph itself read-only.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
)

// ShortestDistances computes the least-cost distance from source to every
// node. Entries stay +Inf for nodes that cannot be reached; the entry for
// source is always 0.
//
// Returns ErrOutOfRange if source is not a node.
//
// Complexity: O(N²) time, O(N) space.
func (g *Graph) ShortestDistances(source int) ([]float64, error) {
	if err := g.checkIndex("ShortestDistances", source); err != nil {
		return nil, err
	}

	r := newRunner(g, source)
	r.process()

	return r.dist, nil
}

// ShortestPath returns the node sequence origin → … → destination of one
// shortest path, both ends included.
//
// Reconstruction walks backwards from destination; at each step the first
// node p in ascending index order with dist[cur] == dist[p] + W[p][cur]
// becomes the next hop. When origin == destination the path is [origin].
//
// Returns ErrOutOfRange for invalid indices and ErrNoPath when destination
// is unreachable. The reachability check happens before the walk, and the
// walk itself is bounded by N steps, so it always terminates.
//
// Complexity: O(N²) time, O(N) space.
func (g *Graph) ShortestPath(origin, destination int) ([]int, error) {
	if err := g.checkIndex("ShortestPath", origin); err != nil {
		return nil, err
	}
	if err := g.checkIndex("ShortestPath", destination); err != nil {
		return nil, err
	}
	if origin == destination {
		return []int{origin}, nil
	}

	r := newRunner(g, origin)
	r.process()

	if math.IsInf(r.dist[destination], 1) {
		return nil, fmt.Errorf("dijkstra: %d→%d: %w", origin, destination, ErrNoPath)
	}

	return r.walkBack(destination)
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *Graph          // read-only graph
	source  int             // query root
	dist    []float64       // best-known distance from source
	visited *sparsesets.Set // nodes whose distance is final
}

// newRunner seeds distances with the direct edges out of source.
func newRunner(g *Graph, source int) *runner {
	dist := make([]float64, g.n)
	for j := 0; j < g.n; j++ {
		dist[j] = g.weight(source, j)
	}
	dist[source] = 0

	visited := sparsesets.New(g.n)
	visited.Insert(source)

	return &runner{g: g, source: source, dist: dist, visited: visited}
}

// process runs the N−1 selection rounds.
func (r *runner) process() {
	var round, v int
	for round = 0; round < r.g.n-1; round++ {
		v = r.closestUnvisited()
		if v < 0 {
			return // everything left is unreachable
		}
		r.visited.Insert(v)
		r.relax(v)
	}
}

// closestUnvisited returns the unvisited node with the smallest finite
// distance, lowest index first on ties, or -1 if there is none.
func (r *runner) closestUnvisited() int {
	best := -1
	minDist := math.Inf(1)
	for j := 0; j < r.g.n; j++ {
		if r.visited.Contains(j) {
			continue
		}
		if r.dist[j] < minDist {
			minDist = r.dist[j]
			best = j
		}
	}

	return best
}

// relax lowers dist[j] through v for every unvisited neighbour j of v.
func (r *runner) relax(v int) {
	var cand float64
	for _, j := range r.g.adj[v] {
		if r.visited.Contains(j) {
			continue
		}
		cand = r.dist[v] + r.g.weight(v, j)
		if cand < r.dist[j] {
			r.dist[j] = cand
		}
	}
}

// walkBack rebuilds the path from source to destination using the final
// distances. destination must be reachable.
func (r *runner) walkBack(destination int) ([]int, error) {
	n := r.g.n
	path := []int{destination}
	cur := destination

	for steps := 0; cur != r.source; steps++ {
		if steps >= n {
			return nil, fmt.Errorf("dijkstra: walk from %d exceeded %d steps: %w", destination, n, ErrNoPath)
		}
		prev := r.predecessor(cur)
		if prev < 0 {
			return nil, fmt.Errorf("dijkstra: no predecessor for %d: %w", cur, ErrNoPath)
		}
		path = append(path, prev)
		cur = prev
	}

	// path was built destination-first; flip it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// predecessor returns the first p (ascending) on a shortest path into cur.
func (r *runner) predecessor(cur int) int {
	var w float64
	for p := 0; p < r.g.n; p++ {
		if p == cur || math.IsInf(r.dist[p], 1) {
			continue
		}
		w = r.g.weight(p, cur)
		if math.IsInf(w, 1) {
			continue
		}
		if r.dist[cur] == r.dist[p]+w {
			return p
		}
	}

	return -1
}
