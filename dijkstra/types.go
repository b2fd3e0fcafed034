package dijkstra

import (
	"errors"

	"github.com/katalvlaran/evcharge/matrix"
)

// Sentinel errors returned by the graph engine.
var (
	// ErrNilMatrix indicates that a nil weight matrix was passed to NewGraph.
	ErrNilMatrix = errors.New("dijkstra: weight matrix is nil")

	// ErrOutOfRange indicates a node index outside [0, N).
	ErrOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrNoPath indicates that the destination cannot be reached from the origin.
	ErrNoPath = errors.New("dijkstra: no path between nodes")

	// ErrEmptyPath indicates that PathCost received no nodes.
	ErrEmptyPath = errors.New("dijkstra: empty path")

	// ErrNoEdge indicates two consecutive path nodes without a direct edge.
	ErrNoEdge = errors.New("dijkstra: no edge between consecutive nodes")
)

// Graph is a dense weighted digraph over nodes 0..N-1.
//
// weights is owned by the Graph (cloned at construction) and never mutated
// afterwards; adj[i] lists every j with a finite W[i][j] in ascending order.
type Graph struct {
	n       int           // number of nodes
	weights *matrix.Dense // N×N, +Inf = no edge
	adj     [][]int       // cached adjacency lists, load order
}
