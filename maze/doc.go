// Package maze scatters random walls and weights over a grid.
//
// Generate never edits its input. It clones the grid, then visits every
// Open cell once in row-major order and
//
//   - turns it into a wall with probability Density (default 0.3),
//   - otherwise, with probability Weights, gives it a uniform weight in 2..5.
//
// Cells listed with WithKeep (typically the source and target) are never
// touched. Walls already present stay walls.
//
// Determinism: the generator draws from a math/rand source seeded by
// WithSeed. Seed 0 selects a fixed default, so the same grid, options and
// seed always yield the same board.
//
// Complexity: O(R×C) time, O(R×C) memory for the clone.
package maze
