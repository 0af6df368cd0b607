package reach

import "github.com/dshills/levelgen/pkg/grid"

// Report carries the outcome of a Validate call: whether START can reach
// GOAL, and diagnostics useful both to a human reading a failure and to a
// generator/refiner deciding whether to retry.
type Report struct {
	Reachable       bool
	PathLength      int
	JumpCount       int
	MinLandingWidth int
	Reasons         []string
	Path            []grid.Point
}
