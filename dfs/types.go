// Package dfs defines types and options for depth-first search.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable hooks for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a cell is discovered (pre-order),
	// together with its depth on the current branch.
	OnVisit func(c gridgraph.Coord, depth int)

	// OnExit, if non-nil, is invoked when every neighbor of a cell has been
	// tried and the search backtracks out of it (post-order). It is not
	// called for cells still on the stack when the target is found.
	OnExit func(c gridgraph.Coord)
}

// DefaultOptions returns a DFSOptions with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(c gridgraph.Coord)) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}
