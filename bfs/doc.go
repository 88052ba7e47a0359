// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning the visit order and the fewest-steps path from a source cell to
// a target cell.
//
// What
//
//   - Explore cells in strict level order (edge count) from the source using a
//     FIFO frontier; cell weights are ignored.
//   - Returns a *trace.Result containing:
//   - Trace: cells in the order they were dequeued
//   - Path:  source → target, nil if unreachable
//   - Cost:  weighted cost of the found path (reporting only)
//   - Stops as soon as the target is dequeued.
//   - Supports observer hooks:
//   - OnEnqueue (when a cell is discovered)
//   - OnVisit   (when a cell is dequeued and appended to Trace)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Shortest path by step count in O(R×C).
//   - Baseline against which the weighted searches are compared.
//
// Determinism
//
//	Neighbors are enqueued up, right, down, left. Among several equally short
//	paths, the one produced is fixed by that order.
//
// Blocked source
//
//	If the source is Blocked, BFS returns Trace=[source] and no Path. This is
//	a normal result, distinguishing "immediately blocked" from "exhausted".
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (each cell enqueued at most once, four neighbors each)
//   - Memory: O(N)   (queue, visited flags, predecessor array)
//
// Usage
//
//	res, err := bfs.BFS(g, src, dst)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, or gridgraph.ErrOutOfBounds
//	}
//	if !res.Found() {
//		// no path
//	}
//
// Errors
//
//   - ErrGridNil               if the grid pointer is nil.
//   - ErrOptionViolation       if an Option is invalid (e.g. negative MaxDepth).
//   - gridgraph.ErrOutOfBounds if source or target lies outside the grid.
package bfs
