// Package astar provides heuristic-guided shortest-path search (A*) over a
// weighted gridgraph.Grid.
//
// A* keeps the relaxation structure of uniform-cost search but orders its
// frontier by f = g + h, where g is the accumulated cost from the source and
// h estimates the remaining cost to the target. The default heuristic is the
// Manhattan distance |Δrow| + |Δcol|. Every step enters a cell of weight ≥ 1,
// so it never overestimates and is consistent: the first pop of the target
// yields an optimal path, and a cell's g is final when it is popped.
//
// Tie-breaking: among equal f, entries pop in push order (FIFO).
//
// Decrease-key is lazy, as in package dijkstra: stale entries stay in the
// heap and are skipped when popped.
//
// Options:
//
//   - WithOnVisit(fn):   observe each finalized cell with its g and f.
//   - WithHeuristic(h):  replace Manhattan. h must be consistent for the
//     result to stay optimal; a zero heuristic turns A* into Dijkstra.
//     Cells are never reopened, so with an inconsistent h the path may cost
//     more than the optimum, but Cost always equals the path's weight.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N) worst case; usually far fewer cells than Dijkstra.
//   - Space: O(N).
//
// Errors:
//
//   - ErrGridNil               nil grid.
//   - gridgraph.ErrOutOfBounds source or target outside the grid.
package astar
