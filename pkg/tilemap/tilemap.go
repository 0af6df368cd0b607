package tilemap

import "github.com/dshills/levelgen/pkg/grid"

// Autotile neighbor bit positions.
const (
	bitNorth = 1
	bitEast  = 2
	bitSouth = 4
	bitWest  = 8
)

// TileIDs maps semantic cell flags to renderer tile IDs. A zero marker
// value (GoalMarker or StartMarker) means "render as the underlying empty
// cell" rather than baking the marker into a tile.
type TileIDs struct {
	SolidBase     int
	SolidVariants map[int]int
	Hazard        int
	Oneway        int
	Ladder        int
	Empty         int
	GoalMarker    int
	StartMarker   int
}

// ToTilemap resolves every cell of g to exactly one tile ID, in the order:
// SOLID, HAZARD, ONEWAY, LADDER, GOAL marker, START marker, empty.
func ToTilemap(g *grid.SemanticGrid, ids TileIDs) [grid.Height][grid.Width]int {
	var out [grid.Height][grid.Width]int
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			out[y][x] = resolveTile(g, ids, x, y)
		}
	}
	return out
}

func resolveTile(g *grid.SemanticGrid, ids TileIDs, x, y int) int {
	f, _ := g.Get(x, y)
	switch {
	case f.Has(grid.SOLID):
		return solidTile(g, ids, x, y)
	case f.Has(grid.HAZARD):
		return ids.Hazard
	case f.Has(grid.ONEWAY):
		return ids.Oneway
	case f.Has(grid.LADDER):
		return ids.Ladder
	case f.Has(grid.GOAL) && ids.GoalMarker != 0:
		return ids.GoalMarker
	case f.Has(grid.START) && ids.StartMarker != 0:
		return ids.StartMarker
	default:
		return ids.Empty
	}
}

// solidTile returns the plain base ID if no variants are configured,
// otherwise the 4-neighbor autotile variant (falling back to base on a
// mask miss).
func solidTile(g *grid.SemanticGrid, ids TileIDs, x, y int) int {
	if len(ids.SolidVariants) == 0 {
		return ids.SolidBase
	}
	mask := neighborMask(g, x, y)
	if variant, ok := ids.SolidVariants[mask]; ok {
		return variant
	}
	return ids.SolidBase
}

// neighborMask counts off-grid neighbors as SOLID, so border tiles autotile
// as if sealed by the world edge rather than leaving a seam.
func neighborMask(g *grid.SemanticGrid, x, y int) int {
	mask := 0
	if isSolidNeighbor(g, x, y-1) {
		mask |= bitNorth
	}
	if isSolidNeighbor(g, x+1, y) {
		mask |= bitEast
	}
	if isSolidNeighbor(g, x, y+1) {
		mask |= bitSouth
	}
	if isSolidNeighbor(g, x-1, y) {
		mask |= bitWest
	}
	return mask
}

func isSolidNeighbor(g *grid.SemanticGrid, x, y int) bool {
	return g.GetOffGridSolid(x, y).Has(grid.SOLID)
}
