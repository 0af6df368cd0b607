package reach

import "github.com/dshills/levelgen/pkg/grid"

// Mask is a dense boolean view over the grid's 32x32 cells, indexed [y][x].
type Mask [grid.Height][grid.Width]bool

// ComputeStandable returns the standable mask for g: S[y][x] is true iff
// (x, y+1) carries SOLID or ONEWAY and (x, y) carries neither SOLID nor
// HAZARD. The bottom row never has a surface beneath it and is never
// standable, regardless of the off-grid-is-SOLID neighbor convention used
// elsewhere.
func ComputeStandable(g *grid.SemanticGrid) Mask {
	var m Mask
	for y := 0; y < grid.Height; y++ {
		if y == grid.Height-1 {
			continue // no surface beneath the bottom row
		}
		for x := 0; x < grid.Width; x++ {
			feet, _ := g.Get(x, y)
			if feet.Any(grid.SOLID | grid.HAZARD) {
				continue
			}
			below, _ := g.Get(x, y+1)
			if below.Any(grid.SOLID | grid.ONEWAY) {
				m[y][x] = true
			}
		}
	}
	return m
}

// ComputeClearance returns the clearance mask for g given playerHeight: a
// cell (x, y) clears iff (x, y), (x, y-1), ..., (x, y-playerHeight+1) are
// all on-grid and non-SOLID. A head position above row 0 fails clearance.
func ComputeClearance(g *grid.SemanticGrid, playerHeight int) Mask {
	var m Mask
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			ok := true
			for dh := 0; dh < playerHeight; dh++ {
				by := y - dh
				if by < 0 {
					ok = false
					break
				}
				f, _ := g.Get(x, by)
				if f.Has(grid.SOLID) {
					ok = false
					break
				}
			}
			m[y][x] = ok
		}
	}
	return m
}

// ComputeValid returns the conjunction of standable and clearance masks.
func ComputeValid(standable, clearance Mask) Mask {
	var m Mask
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			m[y][x] = standable[y][x] && clearance[y][x]
		}
	}
	return m
}

// At reports the mask's value at (x, y), treating any off-grid point as
// false.
func (m Mask) At(x, y int) bool {
	if !grid.InBounds(x, y) {
		return false
	}
	return m[y][x]
}
