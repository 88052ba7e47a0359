// Package gridgraph models a rectangular board of cells as an implicit graph
// for grid pathfinding.
//
// What:
//
//   - Grid holds rows×cols Cells; each Cell is Open or Blocked and carries a
//     traversal Weight in [MinWeight, MaxWeight].
//   - Coordinates are (Row, Col) pairs; internally cells are addressed by the
//     row-major index row*cols+col.
//   - Neighbors are always enumerated up, right, down, left. Every search
//     package relies on that order for tie-breaking.
//   - Edits (SetKind, SetWeight, Cycle, Clear) are for the caller that owns the
//     board; search packages only read.
//   - ConnectedComponents groups Open cells into 4-connected regions.
//   - Breach finds the fewest Blocked cells that must be opened to link two
//     coordinates (0-1 BFS).
//
// Why:
//
//   - Game boards, maze editors and teaching tools share one board model.
//   - A "no path" answer is more useful when it says how many walls are in the way.
//
// Complexity:
//
//   - InBounds, IsBlocked, Weight, Index, Coordinate: O(1).
//   - New, Clone, Clear: O(R×C) time and memory.
//   - ConnectedComponents: O(R×C×4), Memory: O(R×C).
//   - Breach: O(R×C×4), Memory: O(R×C).
//
// Textual format:
//
//	'.'       Open, weight 1
//	'1'..'5'  Open, given weight
//	'#'       Blocked
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadWeight: weight outside [MinWeight, MaxWeight].
//   - ErrBadCell: unknown rune in the textual format.
//   - ErrOutOfBounds: coordinate outside the grid.
package gridgraph
