package levelgenerr

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		OutOfBounds:         "OutOfBounds",
		SizeMismatch:        "SizeMismatch",
		CorruptData:         "CorruptData",
		SchemaViolation:     "SchemaViolation",
		GenerationExhausted: "GenerationExhausted",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestNewFormatsMessage(t *testing.T) {
	err := New(OutOfBounds, "point (%d, %d)", 3, 4)
	if err.Kind != OutOfBounds {
		t.Errorf("Kind = %v, want OutOfBounds", err.Kind)
	}
	if err.Error() == "" {
		t.Errorf("Error() returned empty string")
	}
}

func TestWithReasonsIncludedInMessage(t *testing.T) {
	err := WithReasons(SchemaViolation, "invalid config", []string{"width must be positive", "height must be positive"})
	msg := err.Error()
	if !contains(msg, "width must be positive") {
		t.Errorf("Error() = %q, expected to contain reason text", msg)
	}
}

func TestIsMatchesByKind(t *testing.T) {
	a := New(CorruptData, "bad data")
	b := Sentinel(CorruptData)
	if !errors.Is(a, b) {
		t.Errorf("expected errors.Is to match on Kind")
	}
	c := Sentinel(SizeMismatch)
	if errors.Is(a, c) {
		t.Errorf("expected errors.Is to not match different Kinds")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
