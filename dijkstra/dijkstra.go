package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/frontier"
	"github.com/katalvlaran/gridpath/trace"
)

// Dijkstra computes the minimum-cost path from src to dst on g.
//
// Returns a Result whose Trace lists cells in the order they were finalized,
// whose Path is one cheapest route (nil if dst is unreachable or beyond
// MaxCost), and whose Cost is that route's total weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. Options must be valid (ErrBadMaxCost).
//  3. src and dst must lie inside g (gridgraph.ErrOutOfBounds).
func Dijkstra(g *gridgraph.Grid, src, dst gridgraph.Coord, opts ...Option) (*trace.Result, error) {
	// 1) Validate grid and options
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate endpoints
	if err := g.CheckEndpoints(src, dst); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	if g.IsBlocked(src) {
		return &trace.Result{}, nil
	}

	// 3) Prepare per-call state
	n := g.Size()
	r := &runner{
		g:         g,
		options:   cfg,
		target:    g.Index(dst),
		cost:      make([]int64, n),
		prev:      trace.NewPredecessors(n),
		finalized: make([]bool, n),
		pq:        frontier.New(n),
		res:       &trace.Result{Trace: make([]gridgraph.Coord, 0, n)},
	}

	// 4) Run and rebuild the route if the target was finalized
	r.init(g.Index(src))
	if r.process() {
		r.res.Path = trace.Reconstruct(g, r.prev, src, dst)
		r.res.Cost = int(r.cost[r.target])
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *gridgraph.Grid    // read-only within Dijkstra
	options   Options            // hook and cost cap
	target    int                // target cell index
	cost      []int64            // best known cost from source, MaxInt64 = unknown
	prev      trace.Predecessors // predecessor on the best known route
	finalized []bool             // cost is final
	pq        *frontier.Queue    // lazy min-heap keyed by cost
	res       *trace.Result
}

// init sets every cost to +∞ except the source and seeds the heap.
func (r *runner) init(src int) {
	for i := range r.cost {
		r.cost[i] = math.MaxInt64
	}
	r.cost[src] = 0
	r.pq.Push(src, 0, 0)
}

// process repeatedly finalizes the cheapest frontier cell. It reports
// whether the target was finalized.
//
// Loop termination conditions:
//
//   - The target is popped and finalized (true).
//   - The heap becomes empty (false). Entries above MaxCost are never pushed.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := r.pq.Pop()
		u := item.Index

		// Skip stale entries of already finalized cells.
		if r.finalized[u] {
			continue
		}
		r.finalized[u] = true
		c := r.g.Coordinate(u)
		r.res.Trace = append(r.res.Trace, c)
		r.options.OnVisit(c, item.Cost)

		if u == r.target {
			return true
		}
		r.relax(u, c)
	}

	return false
}

// relax tries to improve the cost of each Open neighbor of u, in the fixed
// up, right, down, left order. A strictly cheaper route updates cost and
// predecessor and pushes a fresh heap entry.
func (r *runner) relax(u int, c gridgraph.Coord) {
	for _, nb := range r.g.Neighbors(c) {
		if !r.g.Passable(nb) {
			continue
		}
		v := r.g.Index(nb)
		if r.finalized[v] {
			continue
		}
		newCost := r.cost[u] + int64(r.g.Weight(nb))
		if newCost > r.options.MaxCost || newCost >= r.cost[v] {
			continue
		}
		r.cost[v] = newCost
		r.prev[v] = u
		r.pq.Push(v, newCost, newCost)
	}
}
