// Package dijkstra_test contains unit tests for the dense graph engine:
// construction, distances, path reconstruction, tie-breaking, unreachable
// destinations and concurrent read-only use.
package dijkstra_test

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/evcharge/dijkstra"
	"github.com/katalvlaran/evcharge/matrix"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// mustGraph builds a Graph from a raw table or fails the test.
func mustGraph(t testing.TB, rows [][]float64) *dijkstra.Graph {
	t.Helper()
	g, err := dijkstra.FromTable(rows)
	require.NoError(t, err)

	return g
}

// chain is the three-node scenario: 0→1 (10), 1→2 (5), 0→2 (100).
func chain(t testing.TB) *dijkstra.Graph {
	return mustGraph(t, [][]float64{
		{0, 10, 100},
		{0, 0, 5},
		{0, 0, 0},
	})
}

// city is a six-node directed network with a one-way street (3→5 only)
// and an isolated node 4 that nobody can reach.
func city(t testing.TB) *dijkstra.Graph {
	return mustGraph(t, [][]float64{
		//0  1  2  3  4  5
		{0, 4, 2, 0, 0, 0}, // 0
		{4, 0, 1, 5, 0, 0}, // 1
		{2, 1, 0, 8, 0, 10},
		{0, 5, 8, 0, 0, 2},
		{3, 0, 0, 0, 0, 0}, // 4 has an outgoing edge only
		{0, 0, 10, 0, 0, 0},
	})
}

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNewGraph_Validation(t *testing.T) {
	t.Parallel()

	_, err := dijkstra.NewGraph(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = dijkstra.NewGraph(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = dijkstra.FromTable([][]float64{{0, -2}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

func TestNewGraph_ClonesAndNormalisesZero(t *testing.T) {
	t.Parallel()

	w, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, w.Set(0, 1, 3))

	g, err := dijkstra.NewGraph(w)
	require.NoError(t, err)

	// Mutating the source matrix afterwards must not leak into the graph.
	require.NoError(t, w.Set(1, 0, 9))

	got, err := g.Weight(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1), "raw zero must read back as +Inf")

	got, err = g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

// ------------------------------------------------------------------------
// 2. Weight / Adjacent
// ------------------------------------------------------------------------

func TestWeight_DirectionPreserved(t *testing.T) {
	t.Parallel()
	g := chain(t)

	w01, err := g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 10.0, w01)

	w10, err := g.Weight(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(w10, 1))

	w00, err := g.Weight(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(w00, 1), "diagonal zero means no self edge")
}

func TestAdjacent_LoadOrderAndFreshCopy(t *testing.T) {
	t.Parallel()
	g := city(t)

	adj, err := g.Adjacent(2)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{0, 1, 3, 5}, adj); diff != "" {
		t.Errorf("Adjacent(2) mismatch (-want +got):\n%s", diff)
	}

	adj[0] = 42
	again, err := g.Adjacent(2)
	require.NoError(t, err)
	require.Equal(t, 0, again[0], "Adjacent must return a restartable copy")

	only, err := g.Adjacent(4)
	require.NoError(t, err)
	require.Equal(t, []int{0}, only)
}

func TestIndexErrors(t *testing.T) {
	t.Parallel()
	g := chain(t)

	_, err := g.Weight(3, 0)
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
	_, err = g.Weight(0, -1)
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
	_, err = g.Adjacent(-1)
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
	_, err = g.ShortestDistances(3)
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
	_, err = g.ShortestPath(0, 3)
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
	_, err = g.ShortestPath(-1, 0)
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
}

// ------------------------------------------------------------------------
// 3. ShortestDistances
// ------------------------------------------------------------------------

func TestShortestDistances_Chain(t *testing.T) {
	t.Parallel()
	g := chain(t)

	dist, err := g.ShortestDistances(0)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0, 10, 15}, dist); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}

	dist, err = g.ShortestDistances(2)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[2])
	require.True(t, math.IsInf(dist[0], 1))
	require.True(t, math.IsInf(dist[1], 1))
}

func TestShortestDistances_City(t *testing.T) {
	t.Parallel()
	g := city(t)

	dist, err := g.ShortestDistances(0)
	require.NoError(t, err)
	// 0→2 (2), 0→2→1 (3), 0→2→1→3 (8), 4 unreachable, 0→2→1→3→5 (10) beats 0→2→5 (12).
	want := []float64{0, 3, 2, 8, inf, 10}
	if diff := cmp.Diff(want, dist); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestDistances_SingleNode(t *testing.T) {
	t.Parallel()
	g := mustGraph(t, [][]float64{{0}})

	dist, err := g.ShortestDistances(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, dist)
}

// Property: dist[source] == 0 and the triangle inequality holds on every edge.
func TestShortestDistances_Properties(t *testing.T) {
	t.Parallel()
	g := city(t)

	for s := 0; s < g.Order(); s++ {
		dist, err := g.ShortestDistances(s)
		require.NoError(t, err)
		require.Equal(t, 0.0, dist[s])

		for j := 0; j < g.Order(); j++ {
			adj, err := g.Adjacent(j)
			require.NoError(t, err)
			for _, i := range adj {
				w, _ := g.Weight(j, i)
				require.LessOrEqualf(t, dist[i], dist[j]+w,
					"source %d: dist[%d]=%v > dist[%d]+w=%v", s, i, dist[i], j, dist[j]+w)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath_Chain(t *testing.T) {
	t.Parallel()
	g := chain(t)

	path, err := g.ShortestPath(0, 2)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{0, 1, 2}, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPath_SameNode(t *testing.T) {
	t.Parallel()
	g := city(t)

	path, err := g.ShortestPath(3, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, path)

	cost, err := g.PathCost(path)
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	t.Parallel()
	g := city(t)

	_, err := g.ShortestPath(0, 4)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = chain(t).ShortestPath(2, 0)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_TieBreakLowestPredecessor(t *testing.T) {
	t.Parallel()
	// Two equal routes 0→1→3 and 0→2→3; the walk must pick 1.
	g := mustGraph(t, [][]float64{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})

	path, err := g.ShortestPath(0, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, path)
}

// Property: ends are origin/destination and the edge sum equals the distance.
func TestShortestPath_Properties(t *testing.T) {
	t.Parallel()
	g := city(t)

	for o := 0; o < g.Order(); o++ {
		dist, err := g.ShortestDistances(o)
		require.NoError(t, err)

		for d := 0; d < g.Order(); d++ {
			path, err := g.ShortestPath(o, d)
			if math.IsInf(dist[d], 1) {
				require.ErrorIs(t, err, dijkstra.ErrNoPath)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, o, path[0])
			require.Equal(t, d, path[len(path)-1])

			cost, err := g.PathCost(path)
			require.NoError(t, err)
			require.InDeltaf(t, dist[d], cost, 1e-9, "path %v", path)
		}
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	t.Parallel()
	g := city(t)

	first, err := g.ShortestPath(0, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := g.ShortestPath(0, 5)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestPathCost_Errors(t *testing.T) {
	t.Parallel()
	g := chain(t)

	_, err := g.PathCost(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptyPath)
	_, err = g.PathCost([]int{2, 0})
	require.ErrorIs(t, err, dijkstra.ErrNoEdge)
	_, err = g.PathCost([]int{0, 7})
	require.ErrorIs(t, err, dijkstra.ErrOutOfRange)
}

// ------------------------------------------------------------------------
// 5. Concurrency: many readers on one immutable graph.
// ------------------------------------------------------------------------

func TestConcurrentQueries(t *testing.T) {
	t.Parallel()
	g := city(t)

	want, err := g.ShortestDistances(0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for k := 0; k < 32; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := g.ShortestDistances(0)
			if err != nil {
				errs <- err
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent distances differ:\n%s", diff)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
