package levelgen

import (
	"github.com/dshills/levelgen/pkg/genrng"
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/levelgenerr"
	"github.com/dshills/levelgen/pkg/movement"
	"github.com/dshills/levelgen/pkg/reach"
)

// midY is the vertical center the first foothold is sampled around.
const midY = 16

// maxAttempts bounds the retry-with-reseed policy.
const maxAttempts = 40

// candidatesPerStep bounds the per-step sampling loop.
const candidatesPerStep = 50

// Result is the outcome of a successful Generate call.
type Result struct {
	Grid      *grid.SemanticGrid
	Footholds []Foothold
	Report    *reach.Report
	SeedUsed  uint32
	Attempts  int
}

// Generate builds a traversable level from plan, retrying with a reseeded
// PRNG up to maxAttempts times when an attempt's foothold placement or
// reachability validation fails. On exhaustion it returns a
// levelgenerr.GenerationExhausted error carrying the last attempt's
// diagnostic reasons.
func Generate(plan LevelPlan, cfg movement.PlayerConfig) (*Result, error) {
	knobs := KnobsFromPlan(plan)

	var lastReasons []string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		seed := plan.Seed + uint32(attempt)
		rng := genrng.New(seed)

		footholds, ok := placeFootholdChain(rng, knobs, cfg)
		if !ok {
			lastReasons = []string{"foothold placement exhausted its candidate budget"}
			continue
		}

		g := paintGrid(footholds, cfg.PlayerHeight)
		report := reach.Validate(g, cfg)
		if report.Reachable {
			return &Result{
				Grid:      g,
				Footholds: footholds,
				Report:    report,
				SeedUsed:  seed,
				Attempts:  attempt + 1,
			}, nil
		}
		lastReasons = report.Reasons
	}

	return nil, levelgenerr.WithReasons(levelgenerr.GenerationExhausted,
		"level generation exhausted all attempts", lastReasons)
}

func placeFirstFoothold(rng *genrng.RNG, playerHeight int, knobs GeneratorKnobs) Foothold {
	firstY := rng.IntRange(maxInt(playerHeight, midY-5), minInt(grid.Height-3, midY+5))
	firstX := rng.IntRange(2, 5)
	firstW := rng.IntRange(knobs.MinFootholdWidth, knobs.MaxFootholdWidth)

	clip := grid.Width - 2 - firstX
	if firstW > clip {
		firstW = clip
	}
	if firstW < knobs.MinFootholdWidth {
		firstW = knobs.MinFootholdWidth
	}
	return Foothold{X: firstX, Y: firstY, W: firstW}
}

// placeFootholdChain runs the full §4.3 step loop: the first foothold plus
// knobs.TargetFootholdCount-1 subsequent steps, each sampled up to
// candidatesPerStep times against the clearance rule and grid bounds.
func placeFootholdChain(rng *genrng.RNG, knobs GeneratorKnobs, cfg movement.PlayerConfig) ([]Foothold, bool) {
	footholds := []Foothold{placeFirstFoothold(rng, cfg.PlayerHeight, knobs)}

	n := knobs.TargetFootholdCount
	for i := 1; i < n; i++ {
		maxUp, maxDown := deriveMaxUpDown(cfg.Spec, knobs.Verticality)
		effMaxW := deriveEffMaxWidth(knobs)
		stepsRemaining := n - i
		prev := footholds[len(footholds)-1]
		minDx := deriveMinDx(cfg.Spec, knobs, prev.X, stepsRemaining)
		isLast := i == n-1

		placed := false
		for try := 0; try < candidatesPerStep; try++ {
			cand := sampleCandidate(rng, prev, minDx, cfg.MaxJumpDistance, maxUp, maxDown, knobs.MinFootholdWidth, effMaxW)
			if !candidateInBounds(cand, cfg.PlayerHeight, isLast) {
				continue
			}
			if !clearanceOK(cand, footholds, cfg.PlayerHeight) {
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
	return footholds, true
}

// paintGrid implements §4.3 step 3's four-phase paint order: safety floor,
// foothold surfaces, clearance carving (guarded against erasing another
// foothold's surface), then START/GOAL placement.
func paintGrid(footholds []Foothold, playerHeight int) *grid.SemanticGrid {
	g := grid.New()
	g.ApplyRect(0, grid.Height-1, grid.Width, 1, grid.SOLID, grid.RectOverwrite)

	surfaceCells := make(map[grid.Point]bool)
	for _, f := range footholds {
		for x := f.X; x <= f.Right(); x++ {
			p := grid.Point{X: x, Y: f.SurfaceY()}
			_ = g.AddFlags(p.X, p.Y, grid.SOLID)
			surfaceCells[p] = true
		}
	}

	for _, f := range footholds {
		for _, y := range f.ClearanceRows(playerHeight) {
			for x := f.X; x <= f.Right(); x++ {
				if surfaceCells[grid.Point{X: x, Y: y}] {
					continue
				}
				_ = g.RemoveFlags(x, y, grid.SOLID)
			}
		}
	}

	first, last := footholds[0], footholds[len(footholds)-1]
	_ = g.AddFlags(first.X+first.W/2, first.Y, grid.START)
	_ = g.AddFlags(last.X+last.W/2, last.Y, grid.GOAL)
	return g
}
