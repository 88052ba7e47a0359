package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/frontier"
	"github.com/katalvlaran/gridpath/trace"
)

// searcher holds the mutable state for a single A* execution.
type searcher struct {
	g         *gridgraph.Grid
	opts      Options
	dst       gridgraph.Coord
	target    int
	gScore    []int64
	prev      trace.Predecessors
	finalized []bool
	open      *frontier.Queue // keyed by f = g + h
	res       *trace.Result
}

// AStar computes a minimum-cost path from src to dst on g, guided by the
// configured heuristic. The Result Trace lists cells in the order they were
// finalized; Path is nil if dst is unreachable.
func AStar(g *gridgraph.Grid, src, dst gridgraph.Coord, opts ...Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.CheckEndpoints(src, dst); err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	if g.IsBlocked(src) {
		return &trace.Result{}, nil
	}

	n := g.Size()
	s := &searcher{
		g:         g,
		opts:      o,
		dst:       dst,
		target:    g.Index(dst),
		gScore:    make([]int64, n),
		prev:      trace.NewPredecessors(n),
		finalized: make([]bool, n),
		open:      frontier.New(n),
		res:       &trace.Result{},
	}
	for i := range s.gScore {
		s.gScore[i] = math.MaxInt64
	}

	start := g.Index(src)
	s.gScore[start] = 0
	s.open.Push(start, s.h(src), 0)

	if s.run() {
		s.res.Path = trace.Reconstruct(g, s.prev, src, dst)
		s.res.Cost = int(s.gScore[s.target])
	}

	return s.res, nil
}

// h evaluates the heuristic towards the target.
func (s *searcher) h(c gridgraph.Coord) int64 {
	return int64(s.opts.Heuristic(c, s.dst))
}

// run pops the lowest-f entry until the target is finalized or the open
// set is exhausted.
func (s *searcher) run() bool {
	for s.open.Len() > 0 {
		item := s.open.Pop()
		u := item.Index
		if s.finalized[u] {
			continue // stale entry
		}
		s.finalized[u] = true

		c := s.g.Coordinate(u)
		s.res.Trace = append(s.res.Trace, c)
		s.opts.OnVisit(c, item.Cost, item.Priority)

		if u == s.target {
			return true
		}
		s.expand(u, c)
	}

	return false
}

// expand relaxes the Open, not yet finalized neighbors of u in up, right,
// down, left order. A finalized cell keeps its g and predecessor.
func (s *searcher) expand(u int, c gridgraph.Coord) {
	for _, nb := range s.g.Neighbors(c) {
		if !s.g.Passable(nb) {
			continue
		}
		v := s.g.Index(nb)
		if s.finalized[v] {
			continue
		}
		tentative := s.gScore[u] + int64(s.g.Weight(nb))
		if tentative >= s.gScore[v] {
			continue
		}
		s.gScore[v] = tentative
		s.prev[v] = u
		s.open.Push(v, tentative+s.h(nb), tentative)
	}
}
