package refine

import (
	"github.com/dshills/levelgen/pkg/genrng"
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/levelgen"
	"github.com/dshills/levelgen/pkg/movement"
	"github.com/dshills/levelgen/pkg/reach"
)

const refineMaxAttempts = 30

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Refine regenerates req.Rect within base, bridging a detected seam with a
// fresh foothold chain and re-validating the whole grid. It never returns
// an error: an unreachable base grid or an exhausted retry loop both come
// back as a RefineReport with Success=false and a copy of base unchanged.
func Refine(base *grid.SemanticGrid, req RefineRequest, seed uint32, knobs levelgen.GeneratorKnobs, cfg movement.PlayerConfig) (*grid.SemanticGrid, *RefineReport) {
	baseReport := reach.Validate(base, cfg)
	if !baseReport.Reachable {
		return base.Copy(), &RefineReport{
			Success: false,
			Reasons: []string{"Original grid is not reachable"},
		}
	}

	start, _ := base.Find(grid.START)
	goal, _ := base.Find(grid.GOAL)
	rect := req.Rect

	entry, exit, ok := detectSeam(base, cfg, rect, start)
	if !ok {
		return base.Copy(), &RefineReport{
			Success: false,
			Reasons: []string{"Could not detect seam points on rect boundary"},
		}
	}

	innerKnobs := knobs
	innerKnobs.Difficulty = clampFloat(knobs.Difficulty+req.DifficultyDelta, 0, 1)
	innerKnobs.Verticality = clampFloat(knobs.Verticality+req.VerticalityDelta, 0, 1)

	startInside := rect.ContainsPoint(start)
	goalInside := rect.ContainsPoint(goal)

	for attempt := 0; attempt < refineMaxAttempts; attempt++ {
		rng := genrng.New(seed + uint32(attempt))

		inner, ok := buildInnerFootholds(rng, rect, entry, exit, innerKnobs, cfg)
		if !ok {
			continue
		}

		candidate := base.Copy()
		bg := newBoundedGrid(candidate, rect)
		bg.clearRect()
		paintInnerFootholds(bg, inner, cfg.PlayerHeight)

		if startInside {
			first := inner[0]
			bg.addFlags(first.X+first.W/2, first.Y, grid.START)
		}
		if goalInside {
			last := inner[len(inner)-1]
			bg.addFlags(last.X+last.W/2, last.Y, grid.GOAL)
		}

		if req.AddSecret {
			addSecret(rng, bg, inner, rect, cfg.PlayerHeight)
		}
		if req.SmoothSilhouette {
			smoothSilhouette(bg, rect)
		}

		report := reach.Validate(candidate, cfg)
		if report.Reachable {
			return candidate, &RefineReport{
				Success:        true,
				SeamEntry:      entry,
				SeamExit:       exit,
				InnerFootholds: len(inner),
				Reach:          report,
			}
		}
	}

	return base.Copy(), &RefineReport{
		Success: false,
		Reasons: []string{"All 30 refinement attempts failed"},
	}
}

// paintInnerFootholds mirrors levelgen's surface-then-clearance paint order
// (§4.3 step 3), scoped to the bounded writer so nothing escapes rect.
func paintInnerFootholds(bg *boundedGrid, footholds []levelgen.Foothold, playerHeight int) {
	surfaceCells := make(map[grid.Point]bool)
	for _, f := range footholds {
		for x := f.X; x <= f.Right(); x++ {
			p := grid.Point{X: x, Y: f.SurfaceY()}
			bg.addFlags(p.X, p.Y, grid.SOLID)
			surfaceCells[p] = true
		}
	}
	for _, f := range footholds {
		for _, y := range f.ClearanceRows(playerHeight) {
			for x := f.X; x <= f.Right(); x++ {
				if surfaceCells[grid.Point{X: x, Y: y}] {
					continue
				}
				bg.removeFlags(x, y, grid.SOLID)
			}
		}
	}
}

// addSecret tries, up to 20 times, to hang an off-critical-path platform
// above a uniformly chosen inner foothold; it gives up silently if nothing
// fits, since the secret is cosmetic and never required for reachability.
func addSecret(rng *genrng.RNG, bg *boundedGrid, footholds []levelgen.Foothold, rect RefineRect, playerHeight int) {
	if len(footholds) == 0 {
		return
	}
	anchor := footholds[rng.IntRange(0, len(footholds)-1)]
	rules := levelgen.DefaultStepRules

	for try := 0; try < 20; try++ {
		sx := anchor.X + rng.IntRange(-1, 1)
		sy := anchor.Y - rng.IntRange(3, 5)
		sw := rng.IntRange(2, 3)
		cand := levelgen.Foothold{X: sx, Y: sy, W: sw}

		if cand.X < rect.X || cand.Right() > rect.Right() {
			continue
		}
		if cand.Y < rect.Y+playerHeight || cand.SurfaceY() > rect.Bottom() {
			continue
		}
		if !rules.ClearanceOK(cand, footholds, playerHeight) {
			continue
		}

		for x := cand.X; x <= cand.Right(); x++ {
			bg.addFlags(x, cand.SurfaceY(), grid.SOLID)
		}
		for _, y := range cand.ClearanceRows(playerHeight) {
			for x := cand.X; x <= cand.Right(); x++ {
				bg.removeFlags(x, y, grid.SOLID)
			}
		}
		return
	}
}

// smoothSilhouette clears isolated one-cell SOLID spikes along the rect's
// top edge. Only columns with both neighbors inside rect are considered, so
// the rect's own left/right boundary columns (which carry the seam
// footholds) are left alone.
func smoothSilhouette(bg *boundedGrid, rect RefineRect) {
	y := rect.Y
	for x := rect.X + 1; x <= rect.Right()-1; x++ {
		if !bg.get(x, y).Has(grid.SOLID) {
			continue
		}
		if bg.get(x-1, y).Has(grid.SOLID) || bg.get(x+1, y).Has(grid.SOLID) {
			continue
		}
		bg.removeFlags(x, y, grid.SOLID)
	}
}
