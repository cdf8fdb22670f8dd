package field

// Visitor is invoked once per visited cell, strictly in ascending linear
// index order. Returning true stops the traversal immediately; no further
// cells are visited.
type Visitor func(f *Field, x, y int, value float64) bool

// Stop and Continue name the Visitor return values for call-site clarity.
const (
	Stop     = true
	Continue = false
)

// ForEach visits every cell in ascending index order.
func (f *Field) ForEach(v Visitor) {
	f.iterate(v, 0, len(f.cells))
}

// ForEachFrom visits cells from (fromX, fromY) to the end of storage in
// ascending index order.
func (f *Field) ForEachFrom(v Visitor, fromX, fromY int) {
	f.iterate(v, f.Index(fromX, fromY), len(f.cells))
}

// ForEachRange visits the half-open linear index range
// [Index(fromX,fromY), Index(toX,toY)) in ascending order. A reversed or
// empty range yields zero visits.
func (f *Field) ForEachRange(v Visitor, fromX, fromY, toX, toY int) {
	f.iterate(v, f.Index(fromX, fromY), f.Index(toX, toY))
}

func (f *Field) iterate(v Visitor, from, to int) {
	for i := from; i < to; i++ {
		if v(f, f.X(i), f.Y(i), f.cells[i]) {
			break
		}
	}
}
