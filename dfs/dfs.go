package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/trace"
)

// numNeighbors is the number of orthogonal neighbor slots per cell.
const numNeighbors = 4

// frame is one level of the explicit DFS stack.
type frame struct {
	idx  int // cell index
	next int // next neighbor slot to try, 0..3
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *gridgraph.Grid
	opts    DFSOptions
	target  int
	stack   []frame
	visited []bool
	prev    trace.Predecessors
	res     *trace.Result
}

// DFS performs depth-first search on g from src, stopping at the first
// discovery of dst. The Result Trace lists cells in pre-order; Path is the
// branch that reached dst, or nil if every reachable cell was exhausted.
func DFS(g *gridgraph.Grid, src, dst gridgraph.Coord, opts ...Option) (*trace.Result, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Validate endpoints
	if err := g.CheckEndpoints(src, dst); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	if g.IsBlocked(src) {
		return &trace.Result{}, nil
	}

	// 4. Initialize walker with capacity hint
	n := g.Size()
	w := &dfsWalker{
		grid:    g,
		opts:    dopts,
		target:  g.Index(dst),
		stack:   make([]frame, 0, 64),
		visited: make([]bool, n),
		prev:    trace.NewPredecessors(n),
		res:     &trace.Result{Trace: make([]gridgraph.Coord, 0, n)},
	}

	// 5. Traverse and rebuild the successful branch
	if w.traverse(g.Index(src)) {
		w.res.Path = trace.Reconstruct(g, w.prev, src, dst)
		w.res.Cost = trace.Cost(g, w.res.Path)
	}

	return w.res, nil
}

// traverse runs the frame loop from root. It reports whether the target was reached.
func (w *dfsWalker) traverse(root int) bool {
	if w.push(root) {
		return true
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// All four neighbors tried: backtrack.
		if top.next == numNeighbors {
			w.pop()
			continue
		}
		nb := w.grid.Neighbors(w.grid.Coordinate(top.idx))[top.next]
		top.next++

		if !w.grid.Passable(nb) {
			continue
		}
		ni := w.grid.Index(nb)
		if w.visited[ni] {
			continue
		}
		// Record the tentative parent before descending.
		w.prev[ni] = top.idx
		if w.push(ni) {
			return true
		}
	}

	return false
}

// push visits idx and places its frame on the stack. It reports whether idx is the target.
func (w *dfsWalker) push(idx int) bool {
	w.visited[idx] = true
	c := w.grid.Coordinate(idx)
	w.res.Trace = append(w.res.Trace, c)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(c, len(w.stack))
	}
	w.stack = append(w.stack, frame{idx: idx})

	return idx == w.target
}

// pop removes the top frame and fires the post-order hook.
func (w *dfsWalker) pop() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.opts.OnExit != nil {
		w.opts.OnExit(w.grid.Coordinate(top.idx))
	}
}
