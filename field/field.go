// Package field provides a dense, fixed-size 2D scalar grid backed by a
// single contiguous float64 slice in row-major order. It is the storage
// primitive for procedural map generation: generators write into it
// cell-by-cell or wholesale, consumers read it back by coordinate or
// linear index.
package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrStorageSize is returned by FromCells when the adopted slice length
// does not equal width*height.
var ErrStorageSize = errors.New("storage length does not match dimensions")

// ErrSizeMismatch is returned by pairwise field operations when the two
// fields have different dimensions. The receiver is left untouched.
var ErrSizeMismatch = errors.New("field dimensions do not match")

// Field is a width×height grid of float64 cells stored in one flat slice,
// index = x + y*width. The size is fixed for the lifetime of the Field.
//
// Field has no internal locking. Concurrent mutation requires external
// coordination; writers may safely partition non-overlapping index ranges.
type Field struct {
	width  int
	height int
	cells  []float64
}

// NewSquare creates an n×n field with all cells zero. n must be positive.
func NewSquare(n int) *Field {
	return New(n, n)
}

// New creates a w×h field with all cells zero. w and h must be positive.
func New(w, h int) *Field {
	return &Field{
		width:  w,
		height: h,
		cells:  make([]float64, w*h),
	}
}

// NewFilled creates a w×h field with every cell set to initial.
func NewFilled(initial float64, w, h int) *Field {
	f := New(w, h)
	f.Fill(initial)
	return f
}

// FromCells creates a field that adopts cells as its backing storage.
// Ownership transfers to the field: the caller must not retain or mutate
// the slice afterward. Returns an error wrapping ErrStorageSize if the
// slice length is not w*h.
func FromCells(cells []float64, w, h int) (*Field, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: len %d for %dx%d", ErrStorageSize, len(cells), w, h)
	}
	return &Field{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Size returns the total cell count, width*height.
func (f *Field) Size() int { return len(f.cells) }

// Cells exposes the backing slice so callers can read or write values
// directly. Escape hatch for bulk access; prefer the accessors.
func (f *Field) Cells() []float64 { return f.cells }

// Index returns the linear storage index of (x, y).
func (f *Field) Index(x, y int) int { return x + y*f.width }

// X returns the column of linear index i.
func (f *Field) X(i int) int { return i % f.width }

// Y returns the row of linear index i.
func (f *Field) Y(i int) int { return i / f.width }

// InBounds reports whether (x, y) addresses a cell. The per-cell accessors
// do not check bounds themselves: passing invalid coordinates to them
// panics on the slice access. Callers needing safety check here first.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Get returns the value at (x, y).
func (f *Field) Get(x, y int) float64 {
	return f.cells[f.Index(x, y)]
}

// Set overwrites the cell at (x, y) and returns the value, for chaining.
func (f *Field) Set(x, y int, value float64) float64 {
	f.cells[f.Index(x, y)] = value
	return value
}

// Add adds value to the cell at (x, y) and returns the new cell value.
func (f *Field) Add(x, y int, value float64) float64 {
	i := f.Index(x, y)
	f.cells[i] += value
	return f.cells[i]
}

// Sub subtracts value from the cell at (x, y) and returns the new cell value.
func (f *Field) Sub(x, y int, value float64) float64 {
	i := f.Index(x, y)
	f.cells[i] -= value
	return f.cells[i]
}

// Mul multiplies the cell at (x, y) by value and returns the new cell value.
func (f *Field) Mul(x, y int, value float64) float64 {
	i := f.Index(x, y)
	f.cells[i] *= value
	return f.cells[i]
}

// Div divides the cell at (x, y) by value and returns the new cell value.
// Division by zero follows IEEE-754 (±Inf or NaN).
func (f *Field) Div(x, y int, value float64) float64 {
	i := f.Index(x, y)
	f.cells[i] /= value
	return f.cells[i]
}

// Mod replaces the cell at (x, y) with its remainder modulo value and
// returns the new cell value. Modulo by zero yields NaN.
func (f *Field) Mod(x, y int, value float64) float64 {
	i := f.Index(x, y)
	f.cells[i] = math.Mod(f.cells[i], value)
	return f.cells[i]
}

// Fill sets every cell to value. Returns the field for chaining.
func (f *Field) Fill(value float64) *Field {
	for i := range f.cells {
		f.cells[i] = value
	}
	return f
}

// AddScalar adds value to every cell. Returns the field for chaining.
func (f *Field) AddScalar(value float64) *Field {
	for i := range f.cells {
		f.cells[i] += value
	}
	return f
}

// SubScalar subtracts value from every cell. Returns the field for chaining.
func (f *Field) SubScalar(value float64) *Field {
	for i := range f.cells {
		f.cells[i] -= value
	}
	return f
}

// MulScalar multiplies every cell by value. Returns the field for chaining.
func (f *Field) MulScalar(value float64) *Field {
	for i := range f.cells {
		f.cells[i] *= value
	}
	return f
}

// DivScalar divides every cell by value. Returns the field for chaining.
func (f *Field) DivScalar(value float64) *Field {
	for i := range f.cells {
		f.cells[i] /= value
	}
	return f
}

// ModScalar replaces every cell with its remainder modulo value.
// Returns the field for chaining.
func (f *Field) ModScalar(value float64) *Field {
	for i := range f.cells {
		f.cells[i] = math.Mod(f.cells[i], value)
	}
	return f
}

// Negate flips the sign of every cell. Returns the field for chaining.
func (f *Field) Negate() *Field {
	for i := range f.cells {
		f.cells[i] = -f.cells[i]
	}
	return f
}

// validate rejects a pairwise operand of different dimensions before any
// cell is mutated, keeping pairwise operations all-or-nothing.
func (f *Field) validate(other *Field) error {
	if other.width != f.width || other.height != f.height {
		return fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrSizeMismatch, f.width, f.height, other.width, other.height)
	}
	return nil
}

// SetField replaces this field's values with other's values.
func (f *Field) SetField(other *Field) error {
	if err := f.validate(other); err != nil {
		return err
	}
	copy(f.cells, other.cells)
	return nil
}

// AddField adds other's values to this field's values elementwise.
func (f *Field) AddField(other *Field) error {
	if err := f.validate(other); err != nil {
		return err
	}
	for i := range f.cells {
		f.cells[i] += other.cells[i]
	}
	return nil
}

// SubField subtracts other's values from this field's values elementwise.
func (f *Field) SubField(other *Field) error {
	if err := f.validate(other); err != nil {
		return err
	}
	for i := range f.cells {
		f.cells[i] -= other.cells[i]
	}
	return nil
}

// MulField multiplies this field's values by other's values elementwise.
func (f *Field) MulField(other *Field) error {
	if err := f.validate(other); err != nil {
		return err
	}
	for i := range f.cells {
		f.cells[i] *= other.cells[i]
	}
	return nil
}

// DivField divides this field's values by other's values elementwise.
func (f *Field) DivField(other *Field) error {
	if err := f.validate(other); err != nil {
		return err
	}
	for i := range f.cells {
		f.cells[i] /= other.cells[i]
	}
	return nil
}

// Equal reports whether both fields have the same width and elementwise
// identical cells. Equal width plus equal cell count forces equal height,
// so height is not compared separately. O(n) per comparison.
func (f *Field) Equal(other *Field) bool {
	if other == f {
		return true
	}
	if other == nil || other.width != f.width || len(other.cells) != len(f.cells) {
		return false
	}
	for i := range f.cells {
		if other.cells[i] != f.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns a deterministic FNV-1a digest over the width and cell bits.
// Equal fields hash equal. O(n) per call; not cached.
func (f *Field) Hash() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	mix := func(v uint64) {
		for s := 0; s < 64; s += 8 {
			h ^= (v >> s) & 0xff
			h *= prime64
		}
	}
	mix(uint64(f.width))
	for _, c := range f.cells {
		mix(math.Float64bits(c))
	}
	return h
}

// Clone returns a new field with freshly allocated storage, same
// dimensions and values. Shares nothing with the receiver.
func (f *Field) Clone() *Field {
	cells := make([]float64, len(f.cells))
	copy(cells, f.cells)
	return &Field{width: f.width, height: f.height, cells: cells}
}

// String renders a human-readable dump, one [x,y|value] entry per cell in
// ascending index order with a newline at the end of each row. Debug aid,
// not meant for machine parsing.
func (f *Field) String() string {
	var b strings.Builder
	f.ForEach(func(f *Field, x, y int, value float64) bool {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(y))
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
		b.WriteByte(']')
		if x == f.width-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		return Continue
	})
	return b.String()
}
