// Package dijkstra provides uniform-cost search (Dijkstra's algorithm) over a
// weighted gridgraph.Grid.
//
// Overview:
//
//   - The cost of a path is the sum of the weights of every cell it enters;
//     the source cell is free. Weights are positive (1..5), so the first time
//     a cell is popped from the frontier its cost is final.
//   - The frontier is a binary min-heap ordered by accumulated cost. Among
//     equal costs, entries pop in the order they were pushed (FIFO), which
//     makes the Trace fully reproducible.
//   - Decrease-key is lazy: a cheaper route to a cell pushes a fresh entry and
//     the outdated one is skipped when popped.
//   - The search stops as soon as the target is finalized.
//
// Key features:
//
//   - WithOnVisit(fn): observe each finalized cell and its cost.
//   - WithMaxCost(c): never expand cells whose cost exceeds c.
//
// Performance and complexity (N = rows×cols):
//
//   - Time:  O(N log N): each cell finalized once, at most four pushes per cell.
//   - Space: O(N) for the cost array, predecessors, finalized flags and heap.
//
// Blocked source:
//
//	A Blocked source is never expanded: Trace and Path are both empty.
//
// Error handling (sentinel errors):
//
//   - ErrGridNil:      nil *gridgraph.Grid.
//   - ErrBadMaxCost:   WithMaxCost was given a negative value.
//   - gridgraph.ErrOutOfBounds: source or target outside the grid.
//
// Thread safety:
//
//   - Dijkstra only reads the grid; concurrent searches over one unchanging
//     grid are safe. Editing the grid during a search is not.
package dijkstra
