package render

import (
	"strings"

	"github.com/lixenwraith/scalarmap/field"
)

// ASCII renders a field as shade-ramp text, one line per row. Values are
// expected in [0, 1]; out-of-range values clamp to the ramp ends.
func ASCII(f *field.Field) string {
	var b strings.Builder
	b.Grow(f.Size() + f.Height())
	f.ForEach(func(f *field.Field, x, y int, value float64) bool {
		b.WriteRune(ShadeRune(value))
		if x == f.Width()-1 {
			b.WriteByte('\n')
		}
		return field.Continue
	})
	return b.String()
}
