package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evcharge/matrix"
)

// NewGraph builds a Graph over the square weight matrix w.
//
// w is cloned, so later changes to the caller's matrix are not observed.
// Cells equal to 0 are normalised to +Inf ("no edge") just like
// matrix.NewWeightMatrix does, so a Graph never holds a zero-weight edge.
//
// Complexity: O(N²).
func NewGraph(w *matrix.Dense) (*Graph, error) {
	if w == nil {
		return nil, ErrNilMatrix
	}
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("dijkstra: NewGraph: %w", err)
	}

	n := w.Rows()
	owned := w.Clone().(*matrix.Dense)
	adj := make([][]int, n)

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = owned.At(i, j) // safe after shape validation
			if v == 0 {
				_ = owned.Set(i, j, math.Inf(1))
				continue
			}
			if matrix.IsEdge(v) {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return &Graph{n: n, weights: owned, adj: adj}, nil
}

// FromTable is a convenience wrapper: matrix.NewWeightMatrix followed by NewGraph.
func FromTable(rows [][]float64) (*Graph, error) {
	w, err := matrix.NewWeightMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: FromTable: %w", err)
	}

	return NewGraph(w)
}

// Order returns the number of nodes N.
func (g *Graph) Order() int { return g.n }

// checkIndex returns ErrOutOfRange (with context) when i is not a node.
func (g *Graph) checkIndex(op string, i int) error {
	if i < 0 || i >= g.n {
		return fmt.Errorf("dijkstra: %s: index %d not in [0,%d): %w", op, i, g.n, ErrOutOfRange)
	}

	return nil
}

// Weight returns W[i][j]; +Inf when there is no direct edge i→j.
func (g *Graph) Weight(i, j int) (float64, error) {
	if err := g.checkIndex("Weight", i); err != nil {
		return 0, err
	}
	if err := g.checkIndex("Weight", j); err != nil {
		return 0, err
	}

	return g.weight(i, j), nil
}

// weight reads W[i][j] without bounds checks; callers validate indices.
func (g *Graph) weight(i, j int) float64 {
	v, _ := g.weights.At(i, j)

	return v
}

// Adjacent returns every j with a finite edge i→j, in load order.
// The returned slice is a fresh copy; callers may keep or modify it.
func (g *Graph) Adjacent(i int) ([]int, error) {
	if err := g.checkIndex("Adjacent", i); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// PathCost sums the edge weights along path.
// A single-node path costs 0. Returns ErrNoEdge if two consecutive nodes
// are not directly connected.
func (g *Graph) PathCost(path []int) (float64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	for _, v := range path {
		if err := g.checkIndex("PathCost", v); err != nil {
			return 0, err
		}
	}

	var total, w float64
	for k := 1; k < len(path); k++ {
		w = g.weight(path[k-1], path[k])
		if !matrix.IsEdge(w) {
			return 0, fmt.Errorf("dijkstra: PathCost: %d→%d: %w", path[k-1], path[k], ErrNoEdge)
		}
		total += w
	}

	return total, nil
}

// String renders the weight matrix with 0 for missing edges.
func (g *Graph) String() string { return g.weights.String() }
