// Package scenario reads and writes search scenarios as YAML.
//
// A scenario bundles a grid in the textual format of gridgraph.Parse with
// the two endpoints and the algorithm to run:
//
//	algorithm: astar      # optional, default bfs
//	source: [0, 0]        # optional, default top-left
//	target: [2, 4]        # optional, default bottom-right
//	grid:
//	  - "..#.."
//	  - ".3#.."
//	  - "....."
//
// Decoding is strict: unknown keys, a second YAML document, coordinates that
// are not [row, col] pairs, and endpoints outside the grid are all rejected
// with an error wrapping ErrInvalidScenario.
package scenario
