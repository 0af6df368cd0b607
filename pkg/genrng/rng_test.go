package genrng

import "testing"

func TestDeterministicForSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		av, bv := a.Uint32(), b.Uint32()
		if av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected seeds 1 and 2 to diverge within 8 draws")
	}
}

func TestIntRangeInBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 500; i++ {
		v := r.IntRange(3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("IntRange(3,9) produced %d, out of bounds", v)
		}
	}
}

func TestIntRangeSinglePoint(t *testing.T) {
	r := New(7)
	if v := r.IntRange(5, 5); v != 5 {
		t.Fatalf("IntRange(5,5) = %d, want 5", v)
	}
}

func TestIntRangePanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for lo > hi")
		}
	}()
	New(1).IntRange(9, 3)
}

func TestFloat64RangeInBounds(t *testing.T) {
	r := New(99)
	for i := 0; i < 500; i++ {
		v := r.Float64Range(-1.0, 1.0)
		if v < -1.0 || v >= 1.0 {
			t.Fatalf("Float64Range(-1,1) produced %v, out of bounds", v)
		}
	}
}

func TestFloat64InUnitInterval(t *testing.T) {
	r := New(13)
	for i := 0; i < 500; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() produced %v, want [0,1)", v)
		}
	}
}
