package grid

import (
	"fmt"

	"github.com/dshills/levelgen/pkg/levelgenerr"
)

// Width and Height are the fixed dimensions of every SemanticGrid. They are
// compile-time constants; there is no variable-sized grid in this engine.
const (
	Width  = 32
	Height = 32
)

// SemanticGrid is a fixed 32x32 row-major field of CellFlag values. The grid
// owns its storage: Copy yields an independent deep copy, and consumers are
// expected to treat a grid as immutable once a generator or refiner has
// finished constructing it.
type SemanticGrid struct {
	cells [Width * Height]CellFlag
}

// New returns an empty (all-EMPTY) 32x32 grid.
func New() *SemanticGrid {
	return &SemanticGrid{}
}

// InBounds reports whether (x, y) lies within [0, Width) x [0, Height).
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func idx(x, y int) int {
	return y*Width + x
}

func outOfBounds(x, y int) error {
	return levelgenerr.New(levelgenerr.OutOfBounds, "point (%d, %d) outside [0, %d) x [0, %d)", x, y, Width, Height)
}

// Get returns the flags at (x, y). Returns OutOfBounds if the point is not
// within the grid.
func (g *SemanticGrid) Get(x, y int) (CellFlag, error) {
	if !InBounds(x, y) {
		return EMPTY, outOfBounds(x, y)
	}
	return g.cells[idx(x, y)], nil
}

// GetOffGridSolid returns the flags at (x, y), treating any point outside
// the grid as SOLID. This is the edge policy the tilemap autotile neighbor
// queries use, so border tiles read as sealed by the world edge.
func (g *SemanticGrid) GetOffGridSolid(x, y int) CellFlag {
	if !InBounds(x, y) {
		return SOLID
	}
	return g.cells[idx(x, y)]
}

// Set overwrites the flags at (x, y). Returns OutOfBounds if the point is
// not within the grid.
func (g *SemanticGrid) Set(x, y int, flags CellFlag) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	g.cells[idx(x, y)] = flags
	return nil
}

// AddFlags ORs flags into the cell at (x, y). Returns OutOfBounds if the
// point is not within the grid.
func (g *SemanticGrid) AddFlags(x, y int, flags CellFlag) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	g.cells[idx(x, y)] |= flags
	return nil
}

// RemoveFlags AND-NOTs flags out of the cell at (x, y). Returns OutOfBounds
// if the point is not within the grid.
func (g *SemanticGrid) RemoveFlags(x, y int, flags CellFlag) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	g.cells[idx(x, y)] &^= flags
	return nil
}

// Fill sets every cell in the grid to flags.
func (g *SemanticGrid) Fill(flags CellFlag) {
	for i := range g.cells {
		g.cells[i] = flags
	}
}

// Clear resets every cell in the grid to EMPTY.
func (g *SemanticGrid) Clear() {
	g.Fill(EMPTY)
}

// Copy returns an independent deep copy of g.
func (g *SemanticGrid) Copy() *SemanticGrid {
	cp := &SemanticGrid{}
	cp.cells = g.cells
	return cp
}

// Equals reports whether g and other have identical cell contents.
func (g *SemanticGrid) Equals(other *SemanticGrid) bool {
	if other == nil {
		return false
	}
	return g.cells == other.cells
}

// RectMode selects how ApplyRect combines flags into each targeted cell.
type RectMode int

const (
	// RectOverwrite replaces each cell's flags with flags.
	RectOverwrite RectMode = iota
	// RectAdd ORs flags into each cell.
	RectAdd
	// RectRemove AND-NOTs flags out of each cell.
	RectRemove
)

// ApplyRect applies flags to every cell in the w x h rectangle with top-left
// corner (x, y), using the given RectMode. Unlike the point operations,
// cells outside the grid are silently skipped rather than raising an error:
// this lets callers clip a rectangle at the grid edge without bounds
// bookkeeping of their own.
func (g *SemanticGrid) ApplyRect(x, y, w, h int, flags CellFlag, mode RectMode) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			px, py := x+dx, y+dy
			if !InBounds(px, py) {
				continue
			}
			i := idx(px, py)
			switch mode {
			case RectOverwrite:
				g.cells[i] = flags
			case RectAdd:
				g.cells[i] |= flags
			case RectRemove:
				g.cells[i] &^= flags
			default:
				panic(fmt.Sprintf("grid: unknown RectMode %d", mode))
			}
		}
	}
}

// Find scans the grid row by row and reports how many cells carry all of
// want. pt is the first such cell in row-major order (the unique one when
// count is 1); it is the zero Point when count is 0.
func (g *SemanticGrid) Find(want CellFlag) (pt Point, count int) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.cells[idx(x, y)].Has(want) {
				if count == 0 {
					pt = Point{X: x, Y: y}
				}
				count++
			}
		}
	}
	return pt, count
}
