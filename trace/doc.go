// Package trace defines the output contract shared by every grid search and
// the predecessor bookkeeping used to rebuild a path.
//
// A Result carries:
//
//   - Trace: every coordinate the search visited (finalized), in order.
//   - Path:  source → target inclusive, nil when the target was not reached.
//   - Cost:  sum of the weights of the path cells after the source.
//
// The presentation side replays Trace and then Path; the search side never
// knows about timing or rendering.
//
// Predecessors is a flat array indexed by row*cols+col, with NoPredecessor
// marking cells that were not discovered from anywhere (the source, or
// unreached cells). Reconstruct walks it back from the target. A chain that
// does not end at the source is a programming error and panics with
// ErrBrokenChain.
package trace
