package field

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewZeroValued(t *testing.T) {
	f := New(4, 3)

	if f.Width() != 4 {
		t.Errorf("Expected width 4, got %d", f.Width())
	}
	if f.Height() != 3 {
		t.Errorf("Expected height 3, got %d", f.Height())
	}
	if f.Size() != 12 {
		t.Errorf("Expected size 12, got %d", f.Size())
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if v := f.Get(x, y); v != 0 {
				t.Errorf("Expected zero at (%d, %d), got %v", x, y, v)
			}
		}
	}
}

func TestNewSquare(t *testing.T) {
	f := NewSquare(5)
	if f.Width() != 5 || f.Height() != 5 {
		t.Errorf("Expected 5x5, got %dx%d", f.Width(), f.Height())
	}
}

func TestNewFilled(t *testing.T) {
	f := NewFilled(2.5, 3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if v := f.Get(x, y); v != 2.5 {
				t.Errorf("Expected 2.5 at (%d, %d), got %v", x, y, v)
			}
		}
	}
}

func TestFromCellsAdoptsStorage(t *testing.T) {
	cells := []float64{1, 2, 3, 4, 5, 6}
	f, err := FromCells(cells, 3, 2)
	if err != nil {
		t.Fatalf("FromCells failed: %v", err)
	}

	if f.Get(0, 0) != 1 || f.Get(2, 1) != 6 {
		t.Errorf("Adopted values wrong: got %v and %v", f.Get(0, 0), f.Get(2, 1))
	}

	// Adoption, not copy: the field owns the exact slice
	if &f.Cells()[0] != &cells[0] {
		t.Error("Expected FromCells to adopt the slice, not copy it")
	}
}

func TestFromCellsLengthMismatch(t *testing.T) {
	for _, n := range []int{0, 5, 7} {
		f, err := FromCells(make([]float64, n), 3, 2)
		if f != nil {
			t.Errorf("Expected nil field for length %d", n)
		}
		if !errors.Is(err, ErrStorageSize) {
			t.Errorf("Expected ErrStorageSize for length %d, got %v", n, err)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	f := New(7, 5)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			i := f.Index(x, y)
			if i < 0 || i >= f.Size() {
				t.Fatalf("Index(%d, %d) = %d out of range", x, y, i)
			}
			if f.X(i) != x || f.Y(i) != y {
				t.Errorf("Round trip failed for (%d, %d): index %d -> (%d, %d)",
					x, y, i, f.X(i), f.Y(i))
			}
		}
	}
	for i := 0; i < f.Size(); i++ {
		if f.Index(f.X(i), f.Y(i)) != i {
			t.Errorf("Round trip failed for index %d", i)
		}
	}
}

func TestInBounds(t *testing.T) {
	f := New(3, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 2, false},
	}
	for _, c := range cases {
		if got := f.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	f := New(3, 2)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range access")
		}
	}()
	f.Get(0, 2)
}

func TestGetSetInverse(t *testing.T) {
	f := New(3, 3)
	if got := f.Set(1, 2, 7.5); got != 7.5 {
		t.Errorf("Set returned %v, want 7.5", got)
	}
	if got := f.Get(1, 2); got != 7.5 {
		t.Errorf("Get after Set = %v, want 7.5", got)
	}
}

func TestPerCellCompoundOps(t *testing.T) {
	f := NewFilled(10, 2, 2)

	if got := f.Add(0, 0, 5); got != 15 {
		t.Errorf("Add = %v, want 15", got)
	}
	if got := f.Sub(0, 1, 4); got != 6 {
		t.Errorf("Sub = %v, want 6", got)
	}
	if got := f.Mul(1, 0, 3); got != 30 {
		t.Errorf("Mul = %v, want 30", got)
	}
	if got := f.Div(1, 1, 4); got != 2.5 {
		t.Errorf("Div = %v, want 2.5", got)
	}
	if got := f.Mod(0, 0, 4); got != 3 {
		t.Errorf("Mod = %v, want 3", got)
	}
}

func TestDivModByZeroFloatSemantics(t *testing.T) {
	f := NewFilled(8, 1, 1)
	if got := f.Div(0, 0, 0); !math.IsInf(got, 1) {
		t.Errorf("Div by zero = %v, want +Inf", got)
	}

	f.Set(0, 0, 8)
	if got := f.Mod(0, 0, 0); !math.IsNaN(got) {
		t.Errorf("Mod by zero = %v, want NaN", got)
	}
}

func TestScalarOps(t *testing.T) {
	f := NewFilled(3, 2, 2)

	f.AddScalar(2)
	checkAll(t, f, 5, "AddScalar")

	f.SubScalar(1)
	checkAll(t, f, 4, "SubScalar")

	f.MulScalar(3)
	checkAll(t, f, 12, "MulScalar")

	f.DivScalar(2)
	checkAll(t, f, 6, "DivScalar")

	f.ModScalar(4)
	checkAll(t, f, 2, "ModScalar")

	f.Negate()
	checkAll(t, f, -2, "Negate")

	f.Fill(9)
	checkAll(t, f, 9, "Fill")
}

func TestScalarOpsChain(t *testing.T) {
	f := New(2, 2).Fill(1).AddScalar(2).MulScalar(3).Negate()
	checkAll(t, f, -9, "chained ops")
}

func checkAll(t *testing.T, f *Field, want float64, op string) {
	t.Helper()
	f.ForEach(func(f *Field, x, y int, value float64) bool {
		if value != want {
			t.Errorf("%s: expected %v at (%d, %d), got %v", op, want, x, y, value)
			return Stop
		}
		return Continue
	})
}

func TestPairwiseOps(t *testing.T) {
	a := NewFilled(10, 2, 3)
	b := NewFilled(2, 2, 3)

	if err := a.AddField(b); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	checkAll(t, a, 12, "AddField")

	if err := a.SubField(b); err != nil {
		t.Fatalf("SubField failed: %v", err)
	}
	checkAll(t, a, 10, "SubField")

	if err := a.MulField(b); err != nil {
		t.Fatalf("MulField failed: %v", err)
	}
	checkAll(t, a, 20, "MulField")

	if err := a.DivField(b); err != nil {
		t.Fatalf("DivField failed: %v", err)
	}
	checkAll(t, a, 10, "DivField")

	if err := a.SetField(b); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	checkAll(t, a, 2, "SetField")
}

func TestPairwiseDimensionMismatch(t *testing.T) {
	a := NewFilled(1, 2, 3)
	b := NewFilled(1, 3, 2) // same cell count, different shape

	ops := map[string]func(*Field) error{
		"SetField": a.SetField,
		"AddField": a.AddField,
		"SubField": a.SubField,
		"MulField": a.MulField,
		"DivField": a.DivField,
	}

	for name, op := range ops {
		if err := op(b); !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("%s: expected ErrSizeMismatch, got %v", name, err)
		}
	}

	// No partial mutation: every cell still holds the original value
	checkAll(t, a, 1, "after mismatch")
}

func TestEqualAndHash(t *testing.T) {
	a := NewFilled(1.5, 3, 2)
	b := NewFilled(1.5, 3, 2)

	if !a.Equal(b) || !b.Equal(a) {
		t.Error("Expected identically built fields to be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("Expected equal fields to have equal hash")
	}
	if !a.Equal(a) {
		t.Error("Expected field to equal itself")
	}
	if a.Equal(nil) {
		t.Error("Expected field not to equal nil")
	}

	c := a.Clone()
	c.Set(2, 1, 99)
	if a.Equal(c) {
		t.Error("Expected fields to differ after changing one cell")
	}

	// Same cell count, different shape
	d := NewFilled(1.5, 2, 3)
	if a.Equal(d) {
		t.Error("Expected 3x2 and 2x3 fields not to be equal")
	}
}

func TestCloneIndependence(t *testing.T) {
	a := NewFilled(1, 2, 2)
	b := a.Clone()

	b.Set(0, 0, 99)
	if a.Get(0, 0) != 1 {
		t.Errorf("Clone aliases source: a.Get(0,0) = %v, want 1", a.Get(0, 0))
	}
	if !a.Equal(a.Clone()) {
		t.Error("Expected clone to equal its source")
	}
}

func TestExampleScenario(t *testing.T) {
	f := NewFilled(0, 3, 2)
	f.Set(1, 1, 5)
	if err := f.AddField(NewFilled(1, 3, 2)); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	if got := f.Get(1, 1); got != 6 {
		t.Errorf("Expected 6 at (1, 1), got %v", got)
	}
	f.ForEach(func(f *Field, x, y int, value float64) bool {
		if x == 1 && y == 1 {
			return Continue
		}
		if value != 1 {
			t.Errorf("Expected 1 at (%d, %d), got %v", x, y, value)
		}
		return Continue
	})
}

func TestStringDump(t *testing.T) {
	f := New(2, 2)
	f.Set(1, 0, 3.5)
	got := f.String()
	want := "[0,0|0] [1,0|3.5]\n[0,1|0] [1,1|0]\n"
	if got != want {
		t.Errorf("String dump mismatch:\ngot  %q\nwant %q", got, want)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Expected dump to end each row with a newline")
	}
}
