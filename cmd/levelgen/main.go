package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/levelgen/pkg/config"
	"github.com/dshills/levelgen/pkg/export"
	"github.com/dshills/levelgen/pkg/grid"
	"github.com/dshills/levelgen/pkg/levelgen"
	"github.com/dshills/levelgen/pkg/movement"
	"github.com/dshills/levelgen/pkg/reach"
	"github.com/dshills/levelgen/pkg/refine"
	"github.com/dshills/levelgen/pkg/tilemap"
)

const version = "1.0.0"

// CLI flags
var (
	planPath   = flag.String("plan", "", "Path to a LevelPlan YAML/JSON file (generate mode)")
	refinePath = flag.String("refine", "", "Path to a RefineRequest YAML/JSON file (refine mode)")
	basePath   = flag.String("base", "", "Path to a previously exported JSON level, used as the base grid for -refine")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, tmj, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the plan's seed in generate mode, or set the refine seed (0 = plan's seed; refine uses 1)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("levelgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if *planPath == "" && *refinePath == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -plan or -refine is required")
		printUsage()
		os.Exit(1)
	}
	if *refinePath != "" && *basePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -refine requires -base")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "tmj": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, tmj, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if *planPath != "" {
		return runGenerate()
	}
	return runRefine()
}

func runGenerate() error {
	if *verbose {
		fmt.Printf("Loading level plan from %s\n", *planPath)
	}
	plan, err := config.LoadLevelPlan(*planPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", plan.Seed, *seedFlag)
		}
		plan.Seed = uint32(*seedFlag)
	}

	cfg := movement.DefaultPlayerConfig()
	if *verbose {
		fmt.Printf("Using seed: %d\n", plan.Seed)
		fmt.Printf("Difficulty: %.2f  Verticality: %.2f  Target footholds: %d\n",
			plan.Difficulty, plan.Verticality, plan.TargetFootholdCount)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating level...")
	}
	result, err := levelgen.Generate(*plan, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Generation completed in %v (attempts=%d, seedUsed=%d)\n", elapsed, result.Attempts, result.SeedUsed)
		printReportStats(result.Report)
	}

	baseName := fmt.Sprintf("level_%d", result.SeedUsed)
	if *format == "json" || *format == "all" {
		if err := exportJSONResult(result, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJGrid(result.Grid, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVGGrid(result.Grid, baseName, fmt.Sprintf("Level (seed=%d)", result.SeedUsed)); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated level (seed=%d) in %v\n", result.SeedUsed, elapsed)
	return nil
}

func runRefine() error {
	if *verbose {
		fmt.Printf("Loading refine request from %s\n", *refinePath)
	}
	req, err := config.LoadRefineRequest(*refinePath)
	if err != nil {
		return fmt.Errorf("failed to load refine request: %w", err)
	}

	base, knobs, err := loadBaseGrid(*basePath)
	if err != nil {
		return fmt.Errorf("failed to load base grid: %w", err)
	}

	seed := uint32(1)
	if *seedFlag != 0 {
		seed = uint32(*seedFlag)
	}
	cfg := movement.DefaultPlayerConfig()

	if *verbose {
		fmt.Printf("Refining rect=(%d,%d,%d,%d) seed=%d\n", req.Rect.X, req.Rect.Y, req.Rect.W, req.Rect.H, seed)
	}

	start := time.Now()
	refined, report := refine.Refine(base, *req, seed, knobs, cfg)
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Refinement completed in %v (success=%v)\n", elapsed, report.Success)
		if !report.Success {
			fmt.Printf("Reasons: %v\n", report.Reasons)
		}
		if report.Reach != nil {
			printReportStats(report.Reach)
		}
	}

	baseName := fmt.Sprintf("refined_%d", seed)
	if *format == "json" || *format == "all" {
		if err := exportJSONRefine(refined, report, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJGrid(refined, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVGGrid(refined, baseName, fmt.Sprintf("Refined (seed=%d)", seed)); err != nil {
			return err
		}
	}

	fmt.Printf("Refinement %s in %v\n", refineStatus(report.Success), elapsed)
	return nil
}

// baseDoc reads just the grid field common to both a generateDoc and a
// refineDoc export so -base can point at either.
type baseDoc struct {
	Grid json.RawMessage `json:"grid"`
}

func loadBaseGrid(path string) (*grid.SemanticGrid, levelgen.GeneratorKnobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, levelgen.GeneratorKnobs{}, err
	}
	var doc baseDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, levelgen.GeneratorKnobs{}, fmt.Errorf("parsing base file: %w", err)
	}
	g, err := grid.FromJSON(doc.Grid)
	if err != nil {
		return nil, levelgen.GeneratorKnobs{}, fmt.Errorf("decoding embedded grid: %w", err)
	}
	knobs := levelgen.KnobsFromPlan(levelgen.LevelPlan{TargetFootholdCount: 8})
	return g, knobs, nil
}

func exportJSONResult(result *levelgen.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(result, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}

func exportJSONRefine(g *grid.SemanticGrid, report *refine.RefineReport, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	data, err := export.JSONRefine(g, report)
	if err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

func defaultTileIDs() tilemap.TileIDs {
	return tilemap.TileIDs{
		SolidBase: 1,
		Hazard:    2,
		Oneway:    3,
		Ladder:    4,
		Empty:     0,
	}
}

func exportTMJGrid(g *grid.SemanticGrid, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		fmt.Printf("Exporting TMJ to %s\n", filename)
	}
	tmjMap, err := export.ExportTMJ(g, defaultTileIDs(), 16, 16, true)
	if err != nil {
		return fmt.Errorf("failed to export TMJ: %w", err)
	}
	if err := export.SaveTMJToFile(tmjMap, filename); err != nil {
		return fmt.Errorf("failed to save TMJ: %w", err)
	}
	return nil
}

func exportSVGGrid(g *grid.SemanticGrid, baseName, title string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = title
	if err := export.SaveSVGToFile(g, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

func printReportStats(report *reach.Report) {
	fmt.Println("\nValidation:")
	fmt.Printf("  Reachable: %v\n", report.Reachable)
	fmt.Printf("  PathLength: %d\n", report.PathLength)
	fmt.Printf("  JumpCount: %d\n", report.JumpCount)
	fmt.Printf("  MinLandingWidth: %d\n", report.MinLandingWidth)
	if len(report.Reasons) > 0 {
		fmt.Printf("  Reasons: %v\n", report.Reasons)
	}
}

func refineStatus(success bool) string {
	if success {
		return "succeeded"
	}
	return "failed"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: levelgen -plan <plan.yaml> [options]")
	fmt.Fprintln(os.Stderr, "       levelgen -refine <refine.yaml> -base <level.json> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'levelgen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("levelgen version %s\n\n", version)
	fmt.Println("A command-line tool for procedural 2D platformer level generation.")
	fmt.Println("\nUsage:")
	fmt.Println("  levelgen -plan <plan.yaml> [options]")
	fmt.Println("  levelgen -refine <refine.yaml> -base <level.json> [options]")
	fmt.Println("\nModes:")
	fmt.Println("  -plan string")
	fmt.Println("        Path to a LevelPlan YAML/JSON file; generates a new level")
	fmt.Println("  -refine string")
	fmt.Println("        Path to a RefineRequest YAML/JSON file; requires -base")
	fmt.Println("  -base string")
	fmt.Println("        Path to a previously exported JSON level, used as the refine base")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, tmj, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the plan's seed, or set the refine seed (default: 0 = plan's seed; refine uses 1)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate a level with default JSON export")
	fmt.Println("  levelgen -plan plan.yaml")
	fmt.Println("\n  # Generate with a custom seed and all export formats")
	fmt.Println("  levelgen -plan plan.yaml -seed 12345 -format all -output ./out")
	fmt.Println("\n  # Refine a region of a previously generated level")
	fmt.Println("  levelgen -refine refine.yaml -base ./out/level_12345.json -format all")
}
