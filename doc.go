// Package gridpath is a grid pathfinding engine: give it a rectangular board
// of weighted cells, a source and a target, and it tells you which cells a
// search examined, in what order, and which route it settled on.
//
// What is inside?
//
//	gridgraph/  the Grid model: cells, coordinates, neighbors, edits, components
//	trace/      the Result contract and shared path reconstruction
//	bfs/        breadth-first search (fewest steps)
//	dfs/        depth-first search (any path, explicit stack)
//	dijkstra/   uniform-cost search (cheapest path)
//	astar/      heuristic-guided search (cheapest path, fewer expansions)
//	maze/       seeded random walls and weights
//	scenario/   YAML scenario files
//
// The root package ties the four searches together behind one Algorithm enum:
//
//	alg, _ := gridpath.ParseAlgorithm("a*")
//	res, err := gridpath.Run(alg, g, src, dst)
//
// Guarantees:
//
//   - Determinism: neighbors are always expanded up, right, down, left, and
//     priority ties pop in insertion order, so one snapshot yields one trace.
//   - Isolation: every call allocates its own state. A Grid is only read, so
//     many calls may share it concurrently (see Compare).
//   - No surprises: "no path" is a normal Result with an empty Path, not an error.
//
// Neighbors are 4-connected and entering a cell costs its weight (1..5).
// Blocked cells are never entered.
package gridpath
