package grid

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/dshills/levelgen/pkg/levelgenerr"
)

// wireGrid is the on-the-wire shape of a serialised SemanticGrid:
// {"width":32,"height":32,"cells":"<base64 of 1024 bytes, row-major>"}.
type wireGrid struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  string `json:"cells"`
}

// ToJSON serialises g to the portable {width, height, cells} form, with
// cells as base64 of the 1024-byte row-major flag buffer.
func (g *SemanticGrid) ToJSON() ([]byte, error) {
	raw := make([]byte, Width*Height)
	for i, f := range g.cells {
		raw[i] = byte(f)
	}
	w := wireGrid{
		Width:  Width,
		Height: Height,
		Cells:  base64.StdEncoding.EncodeToString(raw),
	}
	return json.Marshal(w)
}

// FromJSON parses the {width, height, cells} form produced by ToJSON.
// Unknown fields are rejected. A width or height other than 32 is rejected
// with SizeMismatch; a decoded cell payload whose length is not 1024 bytes,
// or cells text that fails base64 decoding, is rejected with CorruptData.
func FromJSON(data []byte) (*SemanticGrid, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wireGrid
	if err := dec.Decode(&w); err != nil {
		return nil, levelgenerr.New(levelgenerr.CorruptData, "decoding grid JSON: %v", err)
	}

	if w.Width != Width || w.Height != Height {
		return nil, levelgenerr.New(levelgenerr.SizeMismatch, "expected %dx%d, got %dx%d", Width, Height, w.Width, w.Height)
	}

	raw, err := base64.StdEncoding.DecodeString(w.Cells)
	if err != nil {
		return nil, levelgenerr.New(levelgenerr.CorruptData, "decoding base64 cells: %v", err)
	}
	if len(raw) != Width*Height {
		return nil, levelgenerr.New(levelgenerr.CorruptData, "expected %d cell bytes, got %d", Width*Height, len(raw))
	}

	g := New()
	for i, b := range raw {
		g.cells[i] = CellFlag(b)
	}
	return g, nil
}

// String returns a compact debug representation, one character per cell,
// useful in test failure output.
func (g *SemanticGrid) String() string {
	var b bytes.Buffer
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			b.WriteString(cellGlyph(g.cells[idx(x, y)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(f CellFlag) string {
	switch {
	case f.Has(START):
		return "S"
	case f.Has(GOAL):
		return "G"
	case f.Has(HAZARD):
		return "H"
	case f.Has(LADDER):
		return "L"
	case f.Has(SOLID):
		return "#"
	case f.Has(ONEWAY):
		return "-"
	default:
		return "."
	}
}
