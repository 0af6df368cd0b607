package reach

import (
	"fmt"

	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/movement"
)

// Option overrides part of Validate's input, letting a caller analyse a
// hypothetical route instead of the grid's own START/GOAL markers.
type Option func(*options)

type options struct {
	start, goal grid.Point
	hasStart    bool
	hasGoal     bool
}

// WithStart overrides the position Validate treats as START.
func WithStart(x, y int) Option {
	return func(o *options) { o.start = grid.Point{X: x, Y: y}; o.hasStart = true }
}

// WithGoal overrides the position Validate treats as GOAL.
func WithGoal(x, y int) Option {
	return func(o *options) { o.goal = grid.Point{X: x, Y: y}; o.hasGoal = true }
}

// Validate proves (or disproves) that g is traversable from START to GOAL
// under cfg. Unless overridden with WithStart/WithGoal, START and GOAL are
// located by their marker flags in g. Validate never fails: an unreachable
// grid is a result, not an error.
func Validate(g *grid.SemanticGrid, cfg movement.PlayerConfig, opts ...Option) *Report {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	report := &Report{}

	start, startOK := resolveMarker(g, o.hasStart, o.start, grid.START, "START", report)
	goal, goalOK := resolveMarker(g, o.hasGoal, o.goal, grid.GOAL, "GOAL", report)
	if !startOK || !goalOK {
		return report
	}

	standable := ComputeStandable(g)
	clearance := ComputeClearance(g, cfg.PlayerHeight)
	valid := ComputeValid(standable, clearance)

	if !valid.At(start.X, start.Y) {
		report.Reasons = append(report.Reasons, fmt.Sprintf("START at (%d, %d) is not a valid standing position", start.X, start.Y))
	}
	if !valid.At(goal.X, goal.Y) {
		report.Reasons = append(report.Reasons, fmt.Sprintf("GOAL at (%d, %d) is not a valid standing position", goal.X, goal.Y))
	}
	if len(report.Reasons) > 0 {
		return report
	}

	result := BFSMoveGraph(g, cfg, valid, start, goal)
	if !result.Found {
		report.Reasons = append(report.Reasons, unreachableReasons(cfg, start, goal, len(result.Reachable))...)
		return report
	}

	report.Reachable = true
	report.Path = result.Path
	report.PathLength = len(result.Path)
	report.MinLandingWidth = -1
	for i := 0; i < len(result.Path); i++ {
		p := result.Path[i]
		w := LandingWidth(valid, p.X, p.Y)
		if report.MinLandingWidth == -1 || w < report.MinLandingWidth {
			report.MinLandingWidth = w
		}
		if i > 0 {
			prev := result.Path[i-1]
			if IsJump(prev.X, prev.Y, p.X, p.Y) {
				report.JumpCount++
			}
		}
	}
	return report
}

// resolveMarker finds the position of a single marker flag in g, or uses an
// override if provided. On failure it appends a diagnostic reason to report
// and returns ok=false.
func resolveMarker(g *grid.SemanticGrid, override bool, overrideVal grid.Point, flag grid.CellFlag, name string, report *Report) (grid.Point, bool) {
	if override {
		return overrideVal, true
	}
	pt, count := g.Find(flag)
	switch {
	case count == 0:
		report.Reasons = append(report.Reasons, fmt.Sprintf("missing %s marker", name))
		return grid.Point{}, false
	case count > 1:
		report.Reasons = append(report.Reasons, fmt.Sprintf("%d %s markers present, expected exactly one", count, name))
		return grid.Point{}, false
	default:
		return pt, true
	}
}

// unreachableReasons explains a completed-but-goal-not-found BFS: the
// number of reachable positions, plus at least the most constraining of the
// three movement-spec violations implied by the straight-line START->GOAL
// delta.
func unreachableReasons(cfg movement.PlayerConfig, start, goal grid.Point, reachableCount int) []string {
	reasons := []string{fmt.Sprintf("%d reachable positions explored; GOAL not among them", reachableCount)}

	dx := goal.X - start.X
	dy := goal.Y - start.Y

	type violation struct {
		excess int
		text   string
	}
	var violations []violation

	if gap := abs(dx); gap > cfg.MaxJumpDistance {
		violations = append(violations, violation{
			excess: gap - cfg.MaxJumpDistance,
			text:   fmt.Sprintf("horizontal gap %d exceeds maxJumpDistance %d", gap, cfg.MaxJumpDistance),
		})
	}
	if dy < 0 {
		if gain := -dy; gain > cfg.MaxJumpHeight {
			violations = append(violations, violation{
				excess: gain - cfg.MaxJumpHeight,
				text:   fmt.Sprintf("height gain %d exceeds maxJumpHeight %d", gain, cfg.MaxJumpHeight),
			})
		}
	}
	if dy > 0 {
		if drop := dy; drop > cfg.MaxSafeDrop {
			violations = append(violations, violation{
				excess: drop - cfg.MaxSafeDrop,
				text:   fmt.Sprintf("drop %d exceeds maxSafeDrop %d", drop, cfg.MaxSafeDrop),
			})
		}
	}

	// Most constraining first (largest excess over its own threshold).
	for i := 1; i < len(violations); i++ {
		for j := i; j > 0 && violations[j].excess > violations[j-1].excess; j-- {
			violations[j], violations[j-1] = violations[j-1], violations[j]
		}
	}
	for _, v := range violations {
		reasons = append(reasons, v.text)
	}
	return reasons
}
