// Package reach implements the reachability validator: it proves a
// SemanticGrid is traversable from START to GOAL under a configured
// movement spec, and exposes the standable/clearance/valid masks and a
// diagnostics report that pkg/levelgen and pkg/refine reuse directly
// rather than re-deriving.
package reach
