package config

import (
	"bytes"
	"fmt"

	"github.com/dshills/levelgen/pkg/levelgen"
	"github.com/dshills/levelgen/pkg/levelgenerr"
	"gopkg.in/yaml.v3"
)

// levelPlanDoc is the wire shape of a LevelPlan document.
type levelPlanDoc struct {
	Seed                uint32   `yaml:"seed" json:"seed"`
	Difficulty          float64  `yaml:"difficulty" json:"difficulty"`
	Verticality         float64  `yaml:"verticality" json:"verticality"`
	HazardDensity       float64  `yaml:"hazardDensity" json:"hazardDensity"`
	TargetFootholdCount int      `yaml:"targetFootholdCount" json:"targetFootholdCount"`
	AllowLadders        bool     `yaml:"allowLadders" json:"allowLadders"`
	StyleTags           []string `yaml:"styleTags" json:"styleTags"`
}

// LoadLevelPlan reads a LevelPlan document from path, sniffing YAML or JSON
// by extension (.json selects JSON; anything else is parsed as YAML, which
// is a superset of JSON).
func LoadLevelPlan(path string) (*levelgen.LevelPlan, error) {
	data, format, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseLevelPlan(data, format)
}

// ParseLevelPlan decodes and validates a LevelPlan document already in
// memory, rejecting unknown fields and out-of-range values.
func ParseLevelPlan(data []byte, format Format) (*levelgen.LevelPlan, error) {
	var doc levelPlanDoc
	if err := decodeStrict(data, format, &doc); err != nil {
		return nil, levelgenerr.New(levelgenerr.SchemaViolation, "decoding level plan: %v", err)
	}

	if err := validateLevelPlanDoc(doc); err != nil {
		return nil, err
	}

	return &levelgen.LevelPlan{
		Seed:                doc.Seed,
		Difficulty:          doc.Difficulty,
		Verticality:         doc.Verticality,
		HazardDensity:       doc.HazardDensity,
		TargetFootholdCount: doc.TargetFootholdCount,
		AllowLadders:        doc.AllowLadders,
		StyleTags:           doc.StyleTags,
	}, nil
}

func validateLevelPlanDoc(doc levelPlanDoc) error {
	var reasons []string
	if doc.Difficulty < 0 || doc.Difficulty > 1 {
		reasons = append(reasons, fmt.Sprintf("difficulty must be in [0, 1], got %v", doc.Difficulty))
	}
	if doc.Verticality < 0 || doc.Verticality > 1 {
		reasons = append(reasons, fmt.Sprintf("verticality must be in [0, 1], got %v", doc.Verticality))
	}
	if doc.HazardDensity < 0 || doc.HazardDensity > 1 {
		reasons = append(reasons, fmt.Sprintf("hazardDensity must be in [0, 1], got %v", doc.HazardDensity))
	}
	if doc.TargetFootholdCount < 4 || doc.TargetFootholdCount > 16 {
		reasons = append(reasons, fmt.Sprintf("targetFootholdCount must be in [4, 16], got %d", doc.TargetFootholdCount))
	}
	if len(reasons) > 0 {
		return levelgenerr.WithReasons(levelgenerr.SchemaViolation, "invalid level plan", reasons)
	}
	return nil
}

// decodeStrict rejects unknown fields regardless of format: yaml.v3's
// Decoder.KnownFields for YAML, json.Decoder.DisallowUnknownFields for
// JSON.
func decodeStrict(data []byte, format Format, out *levelPlanDoc) error {
	switch format {
	case FormatJSON:
		return decodeJSONStrict(data, out)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(out)
	}
}
