package export

import (
	"encoding/json"
	"testing"

	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/levelgen"
	"github.com/dshills/levelgen/pkg/movement"
	"github.com/dshills/levelgen/pkg/refine"
)

func generateEasyFlat(t *testing.T, seed uint32) *levelgen.Result {
	t.Helper()
	plan := levelgen.LevelPlan{
		Seed:                seed,
		Difficulty:          0.1,
		Verticality:         0.2,
		TargetFootholdCount: 8,
	}
	result, err := levelgen.Generate(plan, movement.DefaultPlayerConfig())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return result
}

func TestJSONRoundTripsGridAndFootholds(t *testing.T) {
	result := generateEasyFlat(t, 1)

	data, err := JSON(result)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc generateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(doc.Footholds) != len(result.Footholds) {
		t.Errorf("got %d footholds, want %d", len(doc.Footholds), len(result.Footholds))
	}
	if doc.SeedUsed != result.SeedUsed {
		t.Errorf("SeedUsed = %d, want %d", doc.SeedUsed, result.SeedUsed)
	}
	if !doc.Report.Reachable {
		t.Errorf("expected embedded report to be reachable")
	}

	decoded, err := grid.FromJSON(doc.Grid)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if !decoded.Equals(result.Grid) {
		t.Errorf("decoded grid does not match original")
	}
}

func TestJSONRefineEmbedsReport(t *testing.T) {
	result := generateEasyFlat(t, 2)
	knobs := levelgen.KnobsFromPlan(levelgen.LevelPlan{TargetFootholdCount: 8})
	req := refine.RefineRequest{Rect: refine.RefineRect{X: 7, Y: 4, W: 16, H: 24}}
	refined, report := refine.Refine(result.Grid, req, 42, knobs, movement.DefaultPlayerConfig())

	data, err := JSONRefine(refined, report)
	if err != nil {
		t.Fatalf("JSONRefine() error = %v", err)
	}

	var doc refineDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Success != report.Success {
		t.Errorf("Success = %v, want %v", doc.Success, report.Success)
	}
	if report.Success && doc.Report == nil {
		t.Errorf("expected embedded report on success")
	}
}
