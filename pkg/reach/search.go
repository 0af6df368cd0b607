package reach

import (
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/movement"
)

// BFSResult carries the outcome of a single-source BFS over the move graph.
type BFSResult struct {
	Found     bool
	Path      []grid.Point
	Reachable map[grid.Point]bool
}

// BFSMoveGraph runs an unweighted breadth-first search over the move graph
// rooted at start, terminating as soon as goal is discovered as a neighbor.
// Reachable holds every position visited: when goal is not found this is
// the full reachable set (what the refiner's seam detection and the
// validator's diagnostics rely on); when goal is found it holds only the
// positions visited up to that point.
func BFSMoveGraph(g *grid.SemanticGrid, cfg movement.PlayerConfig, valid Mask, start, goal grid.Point) BFSResult {
	parent := map[grid.Point]grid.Point{start: start}
	visited := map[grid.Point]bool{start: true}
	queue := []grid.Point{start}

	found := start == goal
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range Neighbors(g, valid, cfg, cur.X, cur.Y) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
			if next == goal {
				found = true
				break
			}
		}
	}

	result := BFSResult{Found: found, Reachable: visited}
	if found {
		result.Path = reconstructPath(parent, start, goal)
	}
	return result
}

func reconstructPath(parent map[grid.Point]grid.Point, start, goal grid.Point) []grid.Point {
	var path []grid.Point
	for cur := goal; ; {
		path = append([]grid.Point{cur}, path...)
		if cur == start {
			break
		}
		cur = parent[cur]
	}
	return path
}

// ReachableSet returns every position reachable from start under the move
// graph, without regard to any particular goal. Used by the refiner to
// determine which rect-boundary cells are actually reachable before
// picking seam points.
func ReachableSet(g *grid.SemanticGrid, cfg movement.PlayerConfig, valid Mask, start grid.Point) map[grid.Point]bool {
	res := BFSMoveGraph(g, cfg, valid, start, grid.Point{X: -1, Y: -1})
	return res.Reachable
}

// LandingWidth returns the width of the contiguous run of valid cells in
// row y that contains column x. Used to compute Report.MinLandingWidth.
func LandingWidth(valid Mask, x, y int) int {
	if !valid.At(x, y) {
		return 0
	}
	left := x
	for left-1 >= 0 && valid.At(left-1, y) {
		left--
	}
	right := x
	for right+1 < grid.Width && valid.At(right+1, y) {
		right++
	}
	return right - left + 1
}
