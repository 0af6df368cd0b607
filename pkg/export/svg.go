package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/levelgen/pkg/grid"
)

// SVGOptions configures SVG visualization export.
type SVGOptions struct {
	CellSize    int    // Pixel size of one grid cell (default: 20)
	Margin      int    // Canvas margin in pixels (default: 40)
	ShowGrid    bool   // Draw grid lines between cells
	ShowLegend  bool   // Show legend explaining cell colors
	ShowStats   bool   // Show level statistics
	Title       string // Optional title for the visualization
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   20,
		Margin:     40,
		ShowGrid:   true,
		ShowLegend: true,
		ShowStats:  true,
		Title:      "Level",
	}
}

// ExportSVG rasterizes a SemanticGrid as a tile-colored SVG: one rect per
// cell, colored by its dominant flag, with START/GOAL drawn as markers on
// top.
func ExportSVG(g *grid.SemanticGrid, opts SVGOptions) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("grid cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 20
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	headerHeight := 0
	if opts.Title != "" || opts.ShowStats {
		headerHeight = 50
	}
	legendWidth := 0
	if opts.ShowLegend {
		legendWidth = 160
	}

	canvasWidth := grid.Width*opts.CellSize + 2*opts.Margin + legendWidth
	canvasHeight := grid.Height*opts.CellSize + 2*opts.Margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:#1a1a2e")

	originX := opts.Margin
	originY := opts.Margin + headerHeight

	drawCells(canvas, g, opts, originX, originY)
	if opts.ShowGrid {
		drawGridLines(canvas, opts, originX, originY)
	}
	drawMarkers(canvas, g, opts, originX, originY)

	if opts.ShowLegend {
		drawCellLegend(canvas, opts, originX+grid.Width*opts.CellSize+20, originY)
	}
	if opts.Title != "" || opts.ShowStats {
		drawCellHeader(canvas, g, opts, canvasWidth)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders g to an SVG file at path with 0644 permissions.
func SaveSVGToFile(g *grid.SemanticGrid, path string, opts SVGOptions) error {
	data, err := ExportSVG(g, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// cellColor returns the fill color for a cell's dominant flag, checked in
// the same precedence order as tilemap.ToTilemap.
func cellColor(f grid.CellFlag) string {
	switch {
	case f.Has(grid.SOLID):
		return "#4a5568"
	case f.Has(grid.HAZARD):
		return "#f56565"
	case f.Has(grid.ONEWAY):
		return "#4299e1"
	case f.Has(grid.LADDER):
		return "#ed8936"
	default:
		return "#0f0f1a"
	}
}

func drawCells(canvas *svg.SVG, g *grid.SemanticGrid, opts SVGOptions, originX, originY int) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			f, _ := g.Get(x, y)
			color := cellColor(f)
			canvas.Rect(
				originX+x*opts.CellSize, originY+y*opts.CellSize,
				opts.CellSize, opts.CellSize,
				fmt.Sprintf("fill:%s", color),
			)
		}
	}
}

func drawGridLines(canvas *svg.SVG, opts SVGOptions, originX, originY int) {
	width := grid.Width * opts.CellSize
	height := grid.Height * opts.CellSize
	style := "stroke:#2d2d44;stroke-width:1"
	for x := 0; x <= grid.Width; x++ {
		px := originX + x*opts.CellSize
		canvas.Line(px, originY, px, originY+height, style)
	}
	for y := 0; y <= grid.Height; y++ {
		py := originY + y*opts.CellSize
		canvas.Line(originX, py, originX+width, py, style)
	}
}

func drawMarkers(canvas *svg.SVG, g *grid.SemanticGrid, opts SVGOptions, originX, originY int) {
	if pt, count := g.Find(grid.START); count == 1 {
		drawMarker(canvas, pt, opts, originX, originY, "#48bb78", "S")
	}
	if pt, count := g.Find(grid.GOAL); count == 1 {
		drawMarker(canvas, pt, opts, originX, originY, "#ffd700", "G")
	}
}

func drawMarker(canvas *svg.SVG, pt grid.Point, opts SVGOptions, originX, originY int, color, glyph string) {
	cx := originX + pt.X*opts.CellSize + opts.CellSize/2
	cy := originY + pt.Y*opts.CellSize + opts.CellSize/2
	radius := opts.CellSize / 2
	canvas.Circle(cx, cy, radius, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", color))
	canvas.Text(cx, cy+radius/3, glyph,
		"text-anchor:middle;font-size:11px;font-weight:bold;fill:#000")
}

func drawCellLegend(canvas *svg.SVG, opts SVGOptions, legendX, legendY int) {
	canvas.Rect(legendX-10, legendY-15, 150, 210,
		"fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.95;rx:5")
	canvas.Text(legendX, legendY, "Legend",
		"font-size:14px;font-weight:bold;fill:#e2e8f0")
	legendY += 25

	entries := []struct {
		name  string
		color string
	}{
		{"Solid", "#4a5568"},
		{"Hazard", "#f56565"},
		{"One-way", "#4299e1"},
		{"Ladder", "#ed8936"},
		{"Empty", "#0f0f1a"},
		{"Start", "#48bb78"},
		{"Goal", "#ffd700"},
	}
	for _, entry := range entries {
		canvas.Rect(legendX, legendY-9, 14, 14, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", entry.color))
		canvas.Text(legendX+22, legendY+2, entry.name, "font-size:11px;fill:#cbd5e0")
		legendY += 22
	}
}

func drawCellHeader(canvas *svg.SVG, g *grid.SemanticGrid, opts SVGOptions, canvasWidth int) {
	headerY := 25
	if opts.Title != "" {
		canvas.Text(canvasWidth/2, headerY, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		headerY += 22
	}
	if opts.ShowStats {
		solid, hazard := 0, 0
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				f, _ := g.Get(x, y)
				if f.Has(grid.SOLID) {
					solid++
				}
				if f.Has(grid.HAZARD) {
					hazard++
				}
			}
		}
		stats := fmt.Sprintf("Solid: %d | Hazard: %d | Size: %dx%d", solid, hazard, grid.Width, grid.Height)
		canvas.Text(canvasWidth/2, headerY, stats,
			"text-anchor:middle;font-size:12px;fill:#a0aec0;font-family:monospace")
	}
}
