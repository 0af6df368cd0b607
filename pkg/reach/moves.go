package reach

import (
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/movement"
)

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CorridorClear tests whether a linear body trajectory from (x1, y1) to
// (x2, y2) clears every SOLID cell along the way. If dx is zero it samples
// every row between y1 and y2 inclusive at column x1; otherwise it steps
// column-by-column from x1 to x2 and interpolates the row linearly. At each
// sampled point every body cell from the feet up playerHeight-1 rows must
// be non-SOLID; cells that fall off-grid are skipped rather than failing,
// since a tall jump can carry the head above row 0 with nothing there to
// block it.
func CorridorClear(g *grid.SemanticGrid, cfg movement.PlayerConfig, x1, y1, x2, y2 int) bool {
	checkColumn := func(ix, iy int) bool {
		for dh := 0; dh < cfg.PlayerHeight; dh++ {
			by := iy - dh
			if !grid.InBounds(ix, by) {
				continue
			}
			f, _ := g.Get(ix, by)
			if f.Has(grid.SOLID) {
				return false
			}
		}
		return true
	}

	dx := x2 - x1
	if dx == 0 {
		lo, hi := y1, y2
		if lo > hi {
			lo, hi = hi, lo
		}
		for iy := lo; iy <= hi; iy++ {
			if !checkColumn(x1, iy) {
				return false
			}
		}
		return true
	}

	step := sign(dx)
	for ix := x1; ; ix += step {
		t := float64(ix-x1) / float64(dx)
		iy := int(roundHalfAwayFromZero(float64(y1) + t*float64(y2-y1)))
		if !checkColumn(ix, iy) {
			return false
		}
		if ix == x2 {
			break
		}
	}
	return true
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int(v + 0.5))
	}
	return float64(int(v - 0.5))
}

// Neighbors returns every valid next position reachable from (x1, y1) in a
// single move: within the movement spec's delta bounds, excluding the
// identity move, landing on a cell the valid mask marks standable, and
// clearing a linear body trajectory along the way.
func Neighbors(g *grid.SemanticGrid, valid Mask, cfg movement.PlayerConfig, x1, y1 int) []grid.Point {
	var out []grid.Point
	for dx := -cfg.MaxJumpDistance; dx <= cfg.MaxJumpDistance; dx++ {
		for dy := -cfg.MaxJumpHeight; dy <= cfg.MaxSafeDrop; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x2, y2 := x1+dx, y1+dy
			if !grid.InBounds(x2, y2) {
				continue
			}
			if !valid.At(x2, y2) {
				continue
			}
			if !CorridorClear(g, cfg, x1, y1, x2, y2) {
				continue
			}
			out = append(out, grid.Point{X: x2, Y: y2})
		}
	}
	return out
}

// IsJump reports whether the move from (x1,y1) to (x2,y2) counts as a jump
// edge for Report.JumpCount: any vertical delta, or a horizontal delta
// greater than one tile.
func IsJump(x1, y1, x2, y2 int) bool {
	return y2-y1 != 0 || abs(x2-x1) > 1
}
