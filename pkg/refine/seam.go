package refine

import (
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/movement"
	"github.com/dshills/levelgen/pkg/reach"
)

// detectSeam computes the reachable, valid-standing entry and exit points
// on a rect's left and right boundary columns, preferring the ones closest
// to the rect's vertical midpoint, falling back to top/bottom-edge cells if
// a column yields none.
func detectSeam(base *grid.SemanticGrid, cfg movement.PlayerConfig, rect RefineRect, start grid.Point) (entry, exit grid.Point, ok bool) {
	standable := reach.ComputeStandable(base)
	clearance := reach.ComputeClearance(base, cfg.PlayerHeight)
	valid := reach.ComputeValid(standable, clearance)
	reachableSet := reach.ReachableSet(base, cfg, valid, start)

	midY := (rect.Y + rect.Bottom()) / 2

	entry, entryOK := closestReachableInColumn(reachableSet, valid, rect.X, rect.Y, rect.Bottom(), midY)
	exit, exitOK := closestReachableInColumn(reachableSet, valid, rect.Right(), rect.Y, rect.Bottom(), midY)

	if entryOK && exitOK {
		return entry, exit, true
	}

	topBottom := reachableOnEdges(reachableSet, valid, rect)
	if len(topBottom) == 0 {
		return grid.Point{}, grid.Point{}, false
	}
	fallbackEntry, fallbackExit := leftmostRightmost(topBottom)
	if !entryOK {
		entry = fallbackEntry
		entryOK = true
	}
	if !exitOK {
		exit = fallbackExit
		exitOK = true
	}
	return entry, exit, entryOK && exitOK
}

func closestReachableInColumn(reachableSet map[grid.Point]bool, valid reach.Mask, x, yLo, yHi, midY int) (grid.Point, bool) {
	best := grid.Point{}
	bestDist := -1
	for y := yLo; y <= yHi; y++ {
		p := grid.Point{X: x, Y: y}
		if !valid.At(x, y) || !reachableSet[p] {
			continue
		}
		dist := y - midY
		if dist < 0 {
			dist = -dist
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = p, dist
		}
	}
	return best, bestDist != -1
}

func reachableOnEdges(reachableSet map[grid.Point]bool, valid reach.Mask, rect RefineRect) []grid.Point {
	var out []grid.Point
	for x := rect.X; x <= rect.Right(); x++ {
		for _, y := range []int{rect.Y, rect.Bottom()} {
			p := grid.Point{X: x, Y: y}
			if valid.At(x, y) && reachableSet[p] {
				out = append(out, p)
			}
		}
	}
	return out
}

func leftmostRightmost(points []grid.Point) (left, right grid.Point) {
	left, right = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < left.X {
			left = p
		}
		if p.X > right.X {
			right = p
		}
	}
	return
}
