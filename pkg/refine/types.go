package refine

import (
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/reach"
)

// RefineRect is an inclusive rectangle on the 32x32 grid.
type RefineRect struct {
	X, Y, W, H int
}

// Right is the rect's inclusive rightmost column.
func (r RefineRect) Right() int { return r.X + r.W - 1 }

// Bottom is the rect's inclusive bottommost row.
func (r RefineRect) Bottom() int { return r.Y + r.H - 1 }

// Contains reports whether (x, y) lies inside the rect.
func (r RefineRect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsPoint is Contains in terms of a grid.Point.
func (r RefineRect) ContainsPoint(p grid.Point) bool { return r.Contains(p.X, p.Y) }

// RefineRequest describes a region refinement: the target rect, knob deltas
// applied to the base generator knobs, and optional cosmetic/secret
// effects. Deltas are added to base knobs and clamped to [0, 1].
type RefineRequest struct {
	Rect               RefineRect
	DifficultyDelta    float64
	VerticalityDelta   float64
	AddSecret          bool
	SmoothSilhouette   bool
	KeepMainPathStable bool
}

// RefineReport carries the outcome of a Refine call. Refine never returns
// an error: a refinement that fails, or a base grid that was already
// unreachable, is encoded here as Success=false with a diagnostic reason
// rather than raised as an error.
type RefineReport struct {
	Success        bool
	Reasons        []string
	SeamEntry      grid.Point
	SeamExit       grid.Point
	InnerFootholds int
	Reach          *reach.Report
}
