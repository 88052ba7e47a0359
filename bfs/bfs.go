package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/trace"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	target  int
	queue   []queueItem
	head    int
	visited []bool
	prev    trace.Predecessors
	res     *trace.Result
}

// BFS runs breadth-first search on g from src towards dst,
// applying any number of functional Options.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options, or an
// error wrapping gridgraph.ErrOutOfBounds for endpoints outside the grid.
// An unreachable target is not an error: the Result simply has no Path.
func BFS(g *gridgraph.Grid, src, dst gridgraph.Coord, opts ...Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.CheckEndpoints(src, dst); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	// Blocked source: report it as the only visited cell, no path.
	if g.IsBlocked(src) {
		return &trace.Result{Trace: []gridgraph.Coord{src}}, nil
	}

	n := g.Size()
	w := &walker{
		grid:    g,
		opts:    o,
		target:  g.Index(dst),
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		prev:    trace.NewPredecessors(n),
		res:     &trace.Result{Trace: make([]gridgraph.Coord, 0, n)},
	}

	w.enqueue(g.Index(src), 0, trace.NoPredecessor)
	if w.loop() {
		w.res.Path = trace.Reconstruct(g, w.prev, src, dst)
		w.res.Cost = trace.Cost(g, w.res.Path)
	}

	return w.res, nil
}

// enqueue marks idx visited at depth d, records its parent, calls OnEnqueue,
// and appends it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.prev[idx] = parent
	w.opts.OnEnqueue(w.grid.Coordinate(idx), d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until the target is dequeued (true) or the
// queue empties (false).
func (w *walker) loop() bool {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.visit(item)
		if item.idx == w.target {
			return true
		}
		w.enqueueNeighbors(item)
	}

	return false
}

// visit records the cell in the trace and calls OnVisit.
func (w *walker) visit(item queueItem) {
	c := w.grid.Coordinate(item.idx)
	w.res.Trace = append(w.res.Trace, c)
	w.opts.OnVisit(c, item.depth)
}

// enqueueNeighbors enqueues every in-bounds, Open, unseen neighbor in the
// fixed up, right, down, left order, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.grid.Neighbors(w.grid.Coordinate(item.idx)) {
		if !w.grid.Passable(nb) {
			continue
		}
		if ni := w.grid.Index(nb); !w.visited[ni] {
			w.enqueue(ni, nextDepth, item.idx)
		}
	}
}
