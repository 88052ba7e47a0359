package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadWeight indicates a cell weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("gridgraph: cell weight out of range")
	// ErrBadCell indicates an unknown rune in the textual grid format.
	ErrBadCell = errors.New("gridgraph: unknown cell symbol")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
