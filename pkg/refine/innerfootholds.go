package refine

import (
	"math"

	"github.com/dshills/levelgen/pkg/genrng"
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/levelgen"
	"github.com/dshills/levelgen/pkg/movement"
)

const innerCandidatesPerStep = 50

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rectMinDx mirrors levelgen's minimum-jump-distance derivation, but
// re-targets its progress term at an arbitrary column (the seam exit)
// instead of a fixed goal column, since bridging a rect has no fixed goal
// column of its own.
func rectMinDx(spec movement.Spec, knobs levelgen.GeneratorKnobs, prevX, targetX, stepsRemaining int) int {
	progressMin := 1
	if stepsRemaining > 0 {
		ceilDiv := int(math.Ceil(float64(targetX-prevX) / float64(stepsRemaining)))
		progressMin = maxInt(1, minInt(spec.MaxJumpDistance, ceilDiv))
	}
	difficultyMin := int(math.Round(float64(spec.MaxJumpDistance) * 0.25 * knobs.Difficulty))
	return clampInt(maxInt(maxInt(progressMin, difficultyMin), 1), 1, spec.MaxJumpDistance)
}

// rectBoundsOK rejects an intermediate candidate that leaves the rect or
// encroaches on its top/bottom margin.
func rectBoundsOK(c levelgen.Foothold, rect RefineRect, playerHeight int) bool {
	if c.X < rect.X || c.Right() > rect.Right() {
		return false
	}
	if c.Y < rect.Y+playerHeight || c.Y > rect.Bottom()-1 {
		return false
	}
	return true
}

// buildInnerFootholds bridges entry to exit with a chain of footholds
// confined to rect, reusing levelgen's step rules so the bridge reads as
// part of the same generated level rather than a distinct algorithm.
func buildInnerFootholds(rng *genrng.RNG, rect RefineRect, entry, exit grid.Point, innerKnobs levelgen.GeneratorKnobs, cfg movement.PlayerConfig) ([]levelgen.Foothold, bool) {
	rules := levelgen.DefaultStepRules

	firstW := minInt(rng.IntRange(innerKnobs.MinFootholdWidth, innerKnobs.MaxFootholdWidth), rect.Right()-entry.X+1)
	if firstW < 1 {
		firstW = 1
	}
	footholds := []levelgen.Foothold{{X: entry.X, Y: entry.Y, W: firstW}}

	avgHop := maxInt(1, (cfg.MaxJumpDistance+1)/2)
	dx := exit.X - entry.X
	numIntermediate := clampInt(dx/avgHop-1, 0, 6)

	for i := 0; i < numIntermediate; i++ {
		maxUp, maxDown := rules.DeriveMaxUpDown(cfg.Spec, innerKnobs.Verticality)
		effMaxW := rules.DeriveEffMaxWidth(innerKnobs)
		prev := footholds[len(footholds)-1]
		stepsRemaining := numIntermediate - i
		minDx := rectMinDx(cfg.Spec, innerKnobs, prev.X, exit.X, stepsRemaining)

		placed := false
		for try := 0; try < innerCandidatesPerStep; try++ {
			cand := rules.SampleCandidate(rng, prev, minDx, cfg.MaxJumpDistance, maxUp, maxDown, innerKnobs.MinFootholdWidth, effMaxW)
			if !rectBoundsOK(cand, rect, cfg.PlayerHeight) {
				continue
			}
			if !rules.ClearanceOK(cand, footholds, cfg.PlayerHeight) {
				continue
			}
			footholds = append(footholds, cand)
			placed = true
			break
		}
		if !placed {
			return nil, false
		}
	}

	last := footholds[len(footholds)-1]
	effMaxW := rules.DeriveEffMaxWidth(innerKnobs)
	placed := false
	for try := 0; try < innerCandidatesPerStep; try++ {
		w := minInt(rng.IntRange(innerKnobs.MinFootholdWidth, effMaxW), exit.X-rect.X+1)
		if w < 1 {
			continue
		}
		final := levelgen.Foothold{X: exit.X - w + 1, Y: exit.Y, W: w}

		ddx := exit.X - last.X
		ddy := exit.Y - last.Y
		if absInt(ddx) > cfg.MaxJumpDistance {
			continue
		}
		if ddy > cfg.MaxSafeDrop {
			continue
		}
		if -ddy > cfg.MaxJumpHeight {
			continue
		}
		if !rules.ClearanceOK(final, footholds, cfg.PlayerHeight) {
			continue
		}
		footholds = append(footholds, final)
		placed = true
		break
	}
	if !placed {
		return nil, false
	}
	return footholds, true
}
