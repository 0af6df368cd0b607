package grid

// CellFlag is a bitfield of independent flags describing the semantic role
// of a single tile. Flags compose freely by OR; SOLID∪HAZARD is treated by
// the validator as an impassable feet tile, and SOLID∪ONEWAY as an
// acceptable surface beneath the feet.
type CellFlag uint8

const (
	// EMPTY has no flags set.
	EMPTY CellFlag = 0
	// SOLID is fully blocking terrain: walls, floor surfaces.
	SOLID CellFlag = 0x01
	// ONEWAY is passable from below, a solid landing from above.
	ONEWAY CellFlag = 0x02
	// HAZARD kills the player on contact.
	HAZARD CellFlag = 0x04
	// LADDER is a climbable vertical surface.
	LADDER CellFlag = 0x08
	// GOAL marks the level exit. At most one cell in a valid grid carries it.
	GOAL CellFlag = 0x10
	// START marks the player spawn. At most one cell in a valid grid carries it.
	START CellFlag = 0x20
)

// Has reports whether all bits in want are set on f.
func (f CellFlag) Has(want CellFlag) bool {
	return f&want == want
}

// Any reports whether any bit in want is set on f.
func (f CellFlag) Any(want CellFlag) bool {
	return f&want != 0
}

// Point is a 2D grid coordinate, (x, y) with y growing downward.
type Point struct {
	X, Y int
}
