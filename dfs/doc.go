// Package dfs implements depth-first search on a gridgraph.Grid.
//
// DFS is not a shortest-path search. It shows exhaustive backtracking order:
// it dives into the first open, unvisited neighbor (up, right, down, left),
// backs out of dead ends, and stops at the first moment the target is
// discovered. Remaining siblings are never explored once a path is found.
//
// Key features:
//   - DFS(g, src, dst, opts...): pre-order Trace plus the discovered Path
//   - Explicit frame stack of (cell, next neighbor) instead of recursion, so
//     grid size is not limited by goroutine stack depth; the Trace is
//     identical to the recursive formulation
//   - Hooks: OnVisit (pre-order) and OnExit (post-order, on backtrack)
//
// Complexity:
//
//   - Time:   O(R×C): each cell pushed at most once, four neighbors tried each.
//   - Memory: O(R×C) for the frame stack, visited flags and predecessor array.
//
// Blocked source:
//
//	A Blocked source is never visited: Trace and Path are both empty.
//
// Errors:
//
//   - ErrGridNil               if g is nil.
//   - gridgraph.ErrOutOfBounds if source or target lies outside the grid.
package dfs
