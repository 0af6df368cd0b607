// Package tilemap converts a SemanticGrid into a renderer-facing grid of
// integer tile IDs, resolving each cell's flags through a fixed precedence
// table and autotiling SOLID cells against their four neighbors.
package tilemap
