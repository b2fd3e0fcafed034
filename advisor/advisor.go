package advisor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evcharge/core"
	"github.com/katalvlaran/evcharge/dijkstra"
)

// Advisor answers charging queries over one graph and its location table.
type Advisor struct {
	g    *dijkstra.Graph
	t    *core.Table
	opts Options
}

// New binds an Advisor to g and t; node i of g must be location i of t.
// Returns ErrNilGraph, ErrNilTable or ErrSizeMismatch.
func New(g *dijkstra.Graph, t *core.Table, opts ...Option) (*Advisor, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if t == nil {
		return nil, ErrNilTable
	}
	if g.Order() != t.Len() {
		return nil, fmt.Errorf("advisor: graph has %d nodes, table has %d locations: %w",
			g.Order(), t.Len(), ErrSizeMismatch)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Advisor{g: g, t: t, opts: o}, nil
}

// Options returns the cost model in effect.
func (a *Advisor) Options() Options { return a.opts }

// Graph returns the underlying graph.
func (a *Advisor) Graph() *dijkstra.Graph { return a.g }

// Table returns the underlying location table.
func (a *Advisor) Table() *core.Table { return a.t }

// checkIndex validates a location index against the graph.
func (a *Advisor) checkIndex(op string, i int) error {
	if i < 0 || i >= a.g.Order() {
		return fmt.Errorf("advisor: %s: location %d not in [0,%d): %w", op, i, a.g.Order(), dijkstra.ErrOutOfRange)
	}

	return nil
}

// checkAmount rejects negative charging amounts.
func checkAmount(op string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("advisor: %s: amount %d: %w", op, amount, ErrNegativeAmount)
	}

	return nil
}

// eligible applies the charger and free-station filter to location i and
// returns its unit price.
func (a *Advisor) eligible(i, amount int) (float64, bool) {
	l, err := a.t.At(i)
	if err != nil {
		return 0, false
	}
	price, ok := l.Price()
	if !ok {
		return 0, false
	}
	if price > 0 || amount <= a.opts.FreeChargeLimit {
		return price, true
	}

	return 0, false
}

// distCache memoises distance vectors by source for a single query.
// It is never shared between queries, so it needs no locking.
type distCache struct {
	g    *dijkstra.Graph
	from map[int][]float64
}

func newDistCache(g *dijkstra.Graph) *distCache {
	return &distCache{g: g, from: make(map[int][]float64)}
}

// dist returns the shortest distance s→t, +Inf when unreachable.
func (c *distCache) dist(s, t int) (float64, error) {
	d, ok := c.from[s]
	if !ok {
		var err error
		if d, err = c.g.ShortestDistances(s); err != nil {
			return math.Inf(1), err
		}
		c.from[s] = d
	}

	return d[t], nil
}

// joinLegs concatenates ShortestPath over consecutive waypoints, listing
// each junction once. Equal consecutive waypoints contribute nothing.
func (a *Advisor) joinLegs(waypoints ...int) ([]int, error) {
	path := []int{waypoints[0]}
	for k := 1; k < len(waypoints); k++ {
		if waypoints[k] == waypoints[k-1] {
			continue
		}
		leg, err := a.g.ShortestPath(waypoints[k-1], waypoints[k])
		if err != nil {
			return nil, fmt.Errorf("advisor: leg %d→%d: %w", waypoints[k-1], waypoints[k], err)
		}
		path = append(path, leg[1:]...)
	}

	return path, nil
}
