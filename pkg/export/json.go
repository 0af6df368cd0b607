package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/levelgen"
	"github.com/dshills/levelgen/pkg/reach"
	"github.com/dshills/levelgen/pkg/refine"
)

type footholdDoc struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
}

type reportDoc struct {
	Reachable       bool     `json:"reachable"`
	PathLength      int      `json:"pathLength"`
	JumpCount       int      `json:"jumpCount"`
	MinLandingWidth int      `json:"minLandingWidth"`
	Reasons         []string `json:"reasons,omitempty"`
}

func toReportDoc(r *reach.Report) reportDoc {
	return reportDoc{
		Reachable:       r.Reachable,
		PathLength:      r.PathLength,
		JumpCount:       r.JumpCount,
		MinLandingWidth: r.MinLandingWidth,
		Reasons:         r.Reasons,
	}
}

type generateDoc struct {
	Grid      json.RawMessage `json:"grid"`
	Footholds []footholdDoc   `json:"footholds"`
	SeedUsed  uint32          `json:"seedUsed"`
	Attempts  int             `json:"attempts"`
	Report    reportDoc       `json:"report"`
}

type refineDoc struct {
	Grid           json.RawMessage `json:"grid"`
	Success        bool            `json:"success"`
	Reasons        []string        `json:"reasons,omitempty"`
	SeamEntry      [2]int          `json:"seamEntry"`
	SeamExit       [2]int          `json:"seamExit"`
	InnerFootholds int             `json:"innerFootholds"`
	Report         *reportDoc      `json:"report,omitempty"`
}

// JSON serializes a generation result to indented JSON, embedding the
// grid's own bit-exact serialisation (pkg/grid's ToJSON) alongside the
// foothold chain and validation report.
func JSON(result *levelgen.Result) ([]byte, error) {
	gridJSON, err := result.Grid.ToJSON()
	if err != nil {
		return nil, err
	}
	doc := generateDoc{
		Grid:     gridJSON,
		SeedUsed: result.SeedUsed,
		Attempts: result.Attempts,
		Report:   toReportDoc(result.Report),
	}
	for _, f := range result.Footholds {
		doc.Footholds = append(doc.Footholds, footholdDoc{X: f.X, Y: f.Y, W: f.W})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// JSONRefine serializes a refinement outcome to indented JSON.
func JSONRefine(g *grid.SemanticGrid, report *refine.RefineReport) ([]byte, error) {
	gridJSON, err := g.ToJSON()
	if err != nil {
		return nil, err
	}
	doc := refineDoc{
		Grid:           gridJSON,
		Success:        report.Success,
		Reasons:        report.Reasons,
		SeamEntry:      [2]int{report.SeamEntry.X, report.SeamEntry.Y},
		SeamExit:       [2]int{report.SeamExit.X, report.SeamExit.Y},
		InnerFootholds: report.InnerFootholds,
	}
	if report.Reach != nil {
		rd := toReportDoc(report.Reach)
		doc.Report = &rd
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SaveJSONToFile writes result's JSON encoding to path with 0644
// permissions.
func SaveJSONToFile(result *levelgen.Result, path string) error {
	data, err := JSON(result)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
