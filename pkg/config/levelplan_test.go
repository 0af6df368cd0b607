package config

import (
	"errors"
	"testing"

	"github.com/dshills/levelgen/pkg/levelgenerr"
)

func TestParseLevelPlanYAML(t *testing.T) {
	yamlDoc := []byte(`
seed: 42
difficulty: 0.3
verticality: 0.5
hazardDensity: 0.1
targetFootholdCount: 8
allowLadders: true
styleTags: ["cave", "dark"]
`)
	plan, err := ParseLevelPlan(yamlDoc, FormatYAML)
	if err != nil {
		t.Fatalf("ParseLevelPlan() error = %v", err)
	}
	if plan.Seed != 42 || plan.TargetFootholdCount != 8 {
		t.Errorf("plan = %+v, unexpected fields", plan)
	}
}

func TestParseLevelPlanJSON(t *testing.T) {
	jsonDoc := []byte(`{
		"seed": 7,
		"difficulty": 0.2,
		"verticality": 0.4,
		"hazardDensity": 0.0,
		"targetFootholdCount": 6,
		"allowLadders": false,
		"styleTags": []
	}`)
	plan, err := ParseLevelPlan(jsonDoc, FormatJSON)
	if err != nil {
		t.Fatalf("ParseLevelPlan() error = %v", err)
	}
	if plan.Seed != 7 || plan.TargetFootholdCount != 6 {
		t.Errorf("plan = %+v, unexpected fields", plan)
	}
}

func TestParseLevelPlanRejectsUnknownField(t *testing.T) {
	yamlDoc := []byte(`
seed: 1
difficulty: 0.3
verticality: 0.5
hazardDensity: 0.1
targetFootholdCount: 8
allowLadders: true
styleTags: []
extra: "not allowed"
`)
	_, err := ParseLevelPlan(yamlDoc, FormatYAML)
	if err == nil {
		t.Fatalf("expected error for unknown field, got nil")
	}
}

func TestParseLevelPlanRejectsOutOfRange(t *testing.T) {
	yamlDoc := []byte(`
seed: 1
difficulty: 1.5
verticality: 0.5
hazardDensity: 0.1
targetFootholdCount: 3
allowLadders: true
styleTags: []
`)
	_, err := ParseLevelPlan(yamlDoc, FormatYAML)
	var lgErr *levelgenerr.Error
	if !errors.As(err, &lgErr) || lgErr.Kind != levelgenerr.SchemaViolation {
		t.Fatalf("expected SchemaViolation, got %v", err)
	}
	if len(lgErr.Reasons) < 2 {
		t.Errorf("expected reasons for both difficulty and targetFootholdCount, got %v", lgErr.Reasons)
	}
}
