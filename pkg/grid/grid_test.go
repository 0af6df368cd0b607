package grid

import (
	"errors"
	"testing"

	"github.com/dshills/levelgen/pkg/levelgenerr"
	"pgregory.net/rapid"
)

func TestGetSetBounds(t *testing.T) {
	t.Run("in bounds round-trips", func(t *testing.T) {
		g := New()
		if err := g.Set(5, 5, SOLID|HAZARD); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := g.Get(5, 5)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != SOLID|HAZARD {
			t.Errorf("Get() = %v, want %v", got, SOLID|HAZARD)
		}
	})

	t.Run("out of bounds raises", func(t *testing.T) {
		g := New()
		cases := []Point{{X: 32, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 32}, {X: 0, Y: -1}}
		for _, p := range cases {
			if _, err := g.Get(p.X, p.Y); err == nil {
				t.Errorf("Get(%d, %d) expected OutOfBounds, got nil", p.X, p.Y)
			} else {
				var lgErr *levelgenerr.Error
				if !errors.As(err, &lgErr) || lgErr.Kind != levelgenerr.OutOfBounds {
					t.Errorf("Get(%d, %d) error kind = %v, want OutOfBounds", p.X, p.Y, err)
				}
			}
			if err := g.Set(p.X, p.Y, SOLID); err == nil {
				t.Errorf("Set(%d, %d) expected OutOfBounds, got nil", p.X, p.Y)
			}
		}
	})
}

func TestAddRemoveFlags(t *testing.T) {
	g := New()
	_ = g.Set(1, 1, SOLID)
	if err := g.AddFlags(1, 1, HAZARD); err != nil {
		t.Fatalf("AddFlags() error = %v", err)
	}
	got, _ := g.Get(1, 1)
	if got != SOLID|HAZARD {
		t.Fatalf("after AddFlags got = %v, want SOLID|HAZARD", got)
	}
	if err := g.RemoveFlags(1, 1, SOLID); err != nil {
		t.Fatalf("RemoveFlags() error = %v", err)
	}
	got, _ = g.Get(1, 1)
	if got != HAZARD {
		t.Fatalf("after RemoveFlags got = %v, want HAZARD", got)
	}
}

func TestFillClear(t *testing.T) {
	g := New()
	g.Fill(SOLID)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			v, _ := g.Get(x, y)
			if v != SOLID {
				t.Fatalf("Fill: (%d,%d) = %v, want SOLID", x, y, v)
			}
		}
	}
	g.Clear()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			v, _ := g.Get(x, y)
			if v != EMPTY {
				t.Fatalf("Clear: (%d,%d) = %v, want EMPTY", x, y, v)
			}
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := New()
	_ = g.Set(3, 3, SOLID)
	cp := g.Copy()
	_ = cp.Set(3, 3, EMPTY)

	orig, _ := g.Get(3, 3)
	copied, _ := cp.Get(3, 3)
	if orig != SOLID {
		t.Fatalf("original mutated via copy: got %v", orig)
	}
	if copied != EMPTY {
		t.Fatalf("copy not mutated: got %v", copied)
	}
	if g.Equals(cp) {
		t.Fatalf("Equals: expected divergent grids to differ")
	}
}

func TestEqualsCellwise(t *testing.T) {
	a, b := New(), New()
	if !a.Equals(b) {
		t.Fatalf("two empty grids should be equal")
	}
	_ = b.Set(10, 10, LADDER)
	if a.Equals(b) {
		t.Fatalf("grids differing in one cell should not be equal")
	}
}

func TestApplyRectClipsSilently(t *testing.T) {
	g := New()
	// spec S: applyRect(30,30,10,10, GOAL) sets (31,31) but does not raise.
	g.ApplyRect(30, 30, 10, 10, GOAL, RectOverwrite)
	v, err := g.Get(31, 31)
	if err != nil {
		t.Fatalf("Get(31,31) error = %v", err)
	}
	if v != GOAL {
		t.Fatalf("ApplyRect: (31,31) = %v, want GOAL", v)
	}
}

func TestApplyRectModes(t *testing.T) {
	g := New()
	g.ApplyRect(0, 0, 4, 4, SOLID, RectOverwrite)
	g.ApplyRect(0, 0, 2, 2, HAZARD, RectAdd)
	v, _ := g.Get(0, 0)
	if v != SOLID|HAZARD {
		t.Fatalf("RectAdd: got %v, want SOLID|HAZARD", v)
	}
	g.ApplyRect(0, 0, 2, 2, SOLID, RectRemove)
	v, _ = g.Get(0, 0)
	if v != HAZARD {
		t.Fatalf("RectRemove: got %v, want HAZARD", v)
	}
}

func TestFindUniqueMarker(t *testing.T) {
	g := New()
	if _, count := g.Find(START); count != 0 {
		t.Fatalf("empty grid: Find(START) count = %d, want 0", count)
	}
	_ = g.Set(2, 3, START)
	pt, count := g.Find(START)
	if count != 1 || pt != (Point{X: 2, Y: 3}) {
		t.Fatalf("Find(START) = %v, %d, want (2,3), 1", pt, count)
	}
	_ = g.Set(5, 5, START)
	if _, count := g.Find(START); count != 2 {
		t.Fatalf("Find(START) count = %d, want 2", count)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := New()
		n := rapid.IntRange(0, 64).Draw(rt, "numCells")
		for i := 0; i < n; i++ {
			x := rapid.IntRange(0, Width-1).Draw(rt, "x")
			y := rapid.IntRange(0, Height-1).Draw(rt, "y")
			flags := CellFlag(rapid.IntRange(0, 0x3F).Draw(rt, "flags"))
			_ = g.Set(x, y, flags)
		}

		data, err := g.ToJSON()
		if err != nil {
			rt.Fatalf("ToJSON() error = %v", err)
		}
		back, err := FromJSON(data)
		if err != nil {
			rt.Fatalf("FromJSON() error = %v", err)
		}
		if !g.Equals(back) {
			rt.Fatalf("round trip mismatch")
		}
	})
}

func TestFromJSONRejectsSizeMismatch(t *testing.T) {
	_, err := FromJSON([]byte(`{"width":16,"height":32,"cells":""}`))
	var lgErr *levelgenerr.Error
	if !errors.As(err, &lgErr) || lgErr.Kind != levelgenerr.SizeMismatch {
		t.Fatalf("expected SizeMismatch, got %v", err)
	}
}

func TestFromJSONRejectsCorruptData(t *testing.T) {
	cases := []string{
		`{"width":32,"height":32,"cells":"not-base64!!"}`,
		`{"width":32,"height":32,"cells":""}`,
	}
	for _, c := range cases {
		_, err := FromJSON([]byte(c))
		var lgErr *levelgenerr.Error
		if !errors.As(err, &lgErr) || lgErr.Kind != levelgenerr.CorruptData {
			t.Errorf("input %q: expected CorruptData, got %v", c, err)
		}
	}
}

func TestFromJSONRejectsUnknownFields(t *testing.T) {
	data, _ := New().ToJSON()
	// Inject an unknown field by splicing it in before the closing brace.
	injected := string(data[:len(data)-1]) + `,"extra":true}`
	_, err := FromJSON([]byte(injected))
	if err == nil {
		t.Fatalf("expected error for unknown field, got nil")
	}
}
