package config

import (
	"bytes"
	"fmt"

	"github.com/dshills/levelgen/pkg/levelgenerr"
	"github.com/dshills/levelgen/pkg/refine"
	"gopkg.in/yaml.v3"
)

type rectDoc struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

// refineRequestDoc is the wire shape of a RefineRequest document.
type refineRequestDoc struct {
	Rect               rectDoc `yaml:"rect" json:"rect"`
	DifficultyDelta    float64 `yaml:"difficultyDelta" json:"difficultyDelta"`
	VerticalityDelta   float64 `yaml:"verticalityDelta" json:"verticalityDelta"`
	AddSecret          bool    `yaml:"addSecret" json:"addSecret"`
	SmoothSilhouette   bool    `yaml:"smoothSilhouette" json:"smoothSilhouette"`
	KeepMainPathStable bool    `yaml:"keepMainPathStable" json:"keepMainPathStable"`
}

// LoadRefineRequest reads a RefineRequest document from path, sniffing
// YAML or JSON by extension.
func LoadRefineRequest(path string) (*refine.RefineRequest, error) {
	data, format, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseRefineRequest(data, format)
}

// ParseRefineRequest decodes and validates a RefineRequest document already
// in memory.
func ParseRefineRequest(data []byte, format Format) (*refine.RefineRequest, error) {
	var doc refineRequestDoc
	if err := decodeRefineRequestStrict(data, format, &doc); err != nil {
		return nil, levelgenerr.New(levelgenerr.SchemaViolation, "decoding refine request: %v", err)
	}

	if err := validateRefineRequestDoc(doc); err != nil {
		return nil, err
	}

	return &refine.RefineRequest{
		Rect: refine.RefineRect{
			X: doc.Rect.X, Y: doc.Rect.Y, W: doc.Rect.W, H: doc.Rect.H,
		},
		DifficultyDelta:    doc.DifficultyDelta,
		VerticalityDelta:   doc.VerticalityDelta,
		AddSecret:          doc.AddSecret,
		SmoothSilhouette:   doc.SmoothSilhouette,
		KeepMainPathStable: doc.KeepMainPathStable,
	}, nil
}

func validateRefineRequestDoc(doc refineRequestDoc) error {
	var reasons []string
	r := doc.Rect
	if r.X < 0 || r.X > 31 {
		reasons = append(reasons, fmt.Sprintf("rect.x must be in [0, 31], got %d", r.X))
	}
	if r.Y < 0 || r.Y > 31 {
		reasons = append(reasons, fmt.Sprintf("rect.y must be in [0, 31], got %d", r.Y))
	}
	if r.W < 1 || r.W > 32 {
		reasons = append(reasons, fmt.Sprintf("rect.w must be in [1, 32], got %d", r.W))
	}
	if r.H < 1 || r.H > 32 {
		reasons = append(reasons, fmt.Sprintf("rect.h must be in [1, 32], got %d", r.H))
	}
	if r.X+r.W > 32 {
		reasons = append(reasons, fmt.Sprintf("rect.x + rect.w must be <= 32, got %d", r.X+r.W))
	}
	if r.Y+r.H > 32 {
		reasons = append(reasons, fmt.Sprintf("rect.y + rect.h must be <= 32, got %d", r.Y+r.H))
	}
	if doc.DifficultyDelta < -1 || doc.DifficultyDelta > 1 {
		reasons = append(reasons, fmt.Sprintf("difficultyDelta must be in [-1, 1], got %v", doc.DifficultyDelta))
	}
	if doc.VerticalityDelta < -1 || doc.VerticalityDelta > 1 {
		reasons = append(reasons, fmt.Sprintf("verticalityDelta must be in [-1, 1], got %v", doc.VerticalityDelta))
	}
	if len(reasons) > 0 {
		return levelgenerr.WithReasons(levelgenerr.SchemaViolation, "invalid refine request", reasons)
	}
	return nil
}

func decodeRefineRequestStrict(data []byte, format Format, out *refineRequestDoc) error {
	switch format {
	case FormatJSON:
		return decodeJSONStrict(data, out)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(out)
	}
}
