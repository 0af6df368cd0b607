package levelgen

import (
	"math"

	"github.com/dshills/levelgen/pkg/genrng"
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/movement"
)

// GoalXMin is the x-threshold the last foothold of a generated chain must
// meet or exceed. It is a fixed part of the generation contract, not a
// tunable knob.
const GoalXMin = 26

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// deriveMaxUpDown scales the movement spec's jump height and safe drop by
// verticality to get the per-step vertical range.
func deriveMaxUpDown(spec movement.Spec, verticality float64) (maxUp, maxDown int) {
	maxUp = roundInt(float64(spec.MaxJumpHeight) * verticality)
	maxDown = roundInt(float64(spec.MaxSafeDrop) * verticality)
	return
}

// deriveEffMaxWidth shrinks the knobs' max foothold width as difficulty
// rises, never below the min width.
func deriveEffMaxWidth(knobs GeneratorKnobs) int {
	shrink := roundInt(knobs.Difficulty * float64(knobs.MaxFootholdWidth-knobs.MinFootholdWidth))
	return maxInt(knobs.MinFootholdWidth, knobs.MaxFootholdWidth-shrink)
}

// deriveMinDx derives the minimum horizontal jump distance for a step,
// balancing steady progress toward GoalXMin against a difficulty-driven
// floor on hop length. Generate passes stepsRemaining = n - i for step i,
// so it counts down from n-1 at the first step to 1 at the last; a value
// of 0 or less drops the progress term and leaves it at 1.
func deriveMinDx(spec movement.Spec, knobs GeneratorKnobs, prevX, stepsRemaining int) int {
	progressMin := 1
	if stepsRemaining > 0 {
		need := GoalXMin - prevX
		ceilDiv := int(math.Ceil(float64(need) / float64(stepsRemaining)))
		progressMin = maxInt(1, minInt(spec.MaxJumpDistance, ceilDiv))
	}
	difficultyMin := roundInt(float64(spec.MaxJumpDistance) * 0.25 * knobs.Difficulty)
	return clampInt(maxInt(maxInt(progressMin, difficultyMin), 1), 1, spec.MaxJumpDistance)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// sampleCandidate draws one candidate foothold stepping from prev, with dx
// in [minDx, maxJumpDistance], dy in [-maxUp, maxDown] (0 if that interval
// is empty), and width in [minW, effMaxW].
func sampleCandidate(rng *genrng.RNG, prev Foothold, minDx, maxJumpDistance, maxUp, maxDown, minW, effMaxW int) Foothold {
	dx := rng.IntRange(minDx, maxJumpDistance)
	dy := 0
	if -maxUp <= maxDown {
		dy = rng.IntRange(-maxUp, maxDown)
	}
	w := rng.IntRange(minW, effMaxW)
	return Foothold{X: prev.X + dx, Y: prev.Y + dy, W: w}
}

// candidateInBounds rejects a candidate whose geometry falls outside the
// grid or, on the chain's last step, short of GoalXMin.
func candidateInBounds(c Foothold, playerHeight int, isLastStep bool) bool {
	if c.X < 1 {
		return false
	}
	if c.Right() > grid.Width-2 {
		return false
	}
	if c.Y < playerHeight {
		return false
	}
	if c.SurfaceY() > grid.Height-2 {
		return false
	}
	if isLastStep && c.X < GoalXMin {
		return false
	}
	return true
}

// clearanceOK enforces the clearance rule: wherever two footholds' column
// ranges overlap, neither's surface row may sit in the other's clearance
// range.
func clearanceOK(candidate Foothold, placed []Foothold, playerHeight int) bool {
	for _, other := range placed {
		if !columnsOverlap(candidate, other) {
			continue
		}
		if rowIn(other.ClearanceRows(playerHeight), candidate.SurfaceY()) {
			return false
		}
		if rowIn(candidate.ClearanceRows(playerHeight), other.SurfaceY()) {
			return false
		}
	}
	return true
}

// StepRules re-exports the step-placement helpers above for pkg/refine's
// inner-foothold bridging, so the two packages share a single definition of
// a "step" instead of the refiner re-deriving its own.
type StepRules struct{}

// DeriveMaxUpDown exposes deriveMaxUpDown.
func (StepRules) DeriveMaxUpDown(spec movement.Spec, verticality float64) (int, int) {
	return deriveMaxUpDown(spec, verticality)
}

// DeriveEffMaxWidth exposes deriveEffMaxWidth.
func (StepRules) DeriveEffMaxWidth(knobs GeneratorKnobs) int {
	return deriveEffMaxWidth(knobs)
}

// DeriveMinDx exposes deriveMinDx.
func (StepRules) DeriveMinDx(spec movement.Spec, knobs GeneratorKnobs, prevX, stepsRemaining int) int {
	return deriveMinDx(spec, knobs, prevX, stepsRemaining)
}

// SampleCandidate exposes sampleCandidate.
func (StepRules) SampleCandidate(rng *genrng.RNG, prev Foothold, minDx, maxJumpDistance, maxUp, maxDown, minW, effMaxW int) Foothold {
	return sampleCandidate(rng, prev, minDx, maxJumpDistance, maxUp, maxDown, minW, effMaxW)
}

// CandidateInBounds exposes candidateInBounds.
func (StepRules) CandidateInBounds(c Foothold, playerHeight int, isLastStep bool) bool {
	return candidateInBounds(c, playerHeight, isLastStep)
}

// ClearanceOK exposes clearanceOK.
func (StepRules) ClearanceOK(candidate Foothold, placed []Foothold, playerHeight int) bool {
	return clearanceOK(candidate, placed, playerHeight)
}

// DefaultStepRules is the shared StepRules value pkg/refine calls into.
var DefaultStepRules = StepRules{}
