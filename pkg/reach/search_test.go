package reach

import (
	"testing"

	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/movement"
)

func TestBFSMoveGraphFindsDirectPath(t *testing.T) {
	g := flatFloor(20)
	standable := ComputeStandable(g)
	clearance := ComputeClearance(g, 2)
	valid := ComputeValid(standable, clearance)
	cfg := movement.DefaultPlayerConfig()

	res := BFSMoveGraph(g, cfg, valid, grid.Point{X: 5, Y: 19}, grid.Point{X: 10, Y: 19})
	if !res.Found {
		t.Fatalf("expected direct path along flat floor")
	}
	if res.Path[0] != (grid.Point{X: 5, Y: 19}) {
		t.Errorf("path should start at start point, got %v", res.Path[0])
	}
	if res.Path[len(res.Path)-1] != (grid.Point{X: 10, Y: 19}) {
		t.Errorf("path should end at goal point, got %v", res.Path[len(res.Path)-1])
	}
}

func TestBFSMoveGraphStartEqualsGoal(t *testing.T) {
	g := flatFloor(20)
	standable := ComputeStandable(g)
	clearance := ComputeClearance(g, 2)
	valid := ComputeValid(standable, clearance)
	cfg := movement.DefaultPlayerConfig()

	res := BFSMoveGraph(g, cfg, valid, grid.Point{X: 5, Y: 19}, grid.Point{X: 5, Y: 19})
	if !res.Found || len(res.Path) != 1 {
		t.Fatalf("expected trivial one-point path when start == goal, got %+v", res)
	}
}

func TestBFSMoveGraphReportsUnreachable(t *testing.T) {
	g := grid.New()
	// An isolated 1x1 floating platform with nothing else: start has no
	// standable neighbors and no goal can be reached.
	_ = g.Set(5, 10, grid.SOLID)
	standable := ComputeStandable(g)
	clearance := ComputeClearance(g, 2)
	valid := ComputeValid(standable, clearance)
	cfg := movement.DefaultPlayerConfig()

	res := BFSMoveGraph(g, cfg, valid, grid.Point{X: 5, Y: 9}, grid.Point{X: 20, Y: 9})
	if res.Found {
		t.Fatalf("expected unreachable goal with no supporting geometry")
	}
	if !res.Reachable[grid.Point{X: 5, Y: 9}] {
		t.Errorf("expected start to be present in reachable set even on failure")
	}
}
