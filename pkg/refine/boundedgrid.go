package refine

import "github.com/dshills/levelgen/pkg/grid"

// boundedGrid wraps a SemanticGrid and rejects writes outside its rect,
// rather than relying on ApplyRect's silent clipping, because refinement
// also reads flags back out and must mask those reads too, so every
// effect of a refinement attempt stays scoped to its rect in both
// directions.
type boundedGrid struct {
	g    *grid.SemanticGrid
	rect RefineRect
}

func newBoundedGrid(g *grid.SemanticGrid, rect RefineRect) *boundedGrid {
	return &boundedGrid{g: g, rect: rect}
}

func (b *boundedGrid) inBounds(x, y int) bool {
	return b.rect.Contains(x, y) && grid.InBounds(x, y)
}

func (b *boundedGrid) set(x, y int, flags grid.CellFlag) {
	if !b.inBounds(x, y) {
		return
	}
	_ = b.g.Set(x, y, flags)
}

func (b *boundedGrid) addFlags(x, y int, flags grid.CellFlag) {
	if !b.inBounds(x, y) {
		return
	}
	_ = b.g.AddFlags(x, y, flags)
}

func (b *boundedGrid) removeFlags(x, y int, flags grid.CellFlag) {
	if !b.inBounds(x, y) {
		return
	}
	_ = b.g.RemoveFlags(x, y, flags)
}

func (b *boundedGrid) get(x, y int) grid.CellFlag {
	if !b.inBounds(x, y) {
		return grid.EMPTY
	}
	f, _ := b.g.Get(x, y)
	return f
}

// clearRect zeroes every cell inside the rect.
func (b *boundedGrid) clearRect() {
	b.g.ApplyRect(b.rect.X, b.rect.Y, b.rect.W, b.rect.H, grid.SOLID|grid.ONEWAY|grid.HAZARD|grid.LADDER|grid.GOAL|grid.START, grid.RectRemove)
}
