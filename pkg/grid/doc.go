// Package grid provides the SemanticGrid: the authoritative, bit-packed
// representation of a single-screen platformer level. A SemanticGrid is a
// fixed 32x32 field of CellFlag values; every other package in this module
// (reach, levelgen, refine, tilemap) reads and writes grids through this
// package's contract.
package grid
