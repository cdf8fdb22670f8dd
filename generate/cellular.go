package generate

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/scalarmap/field"
	"github.com/lixenwraith/scalarmap/parameter"
)

// Smooth applies passes of 3x3 box-blur smoothing to f, reading each pass
// from a snapshot so updates within a pass do not feed into neighbors.
// Edge cells average only their in-bounds neighborhood. Returns f.
func Smooth(f *field.Field, passes int) *field.Field {
	for p := 0; p < passes; p++ {
		prev := f.Clone()
		prev.ForEach(func(prev *field.Field, x, y int, value float64) bool {
			sum := 0.0
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if !prev.InBounds(nx, ny) {
						continue
					}
					sum += prev.Get(nx, ny)
					count++
				}
			}
			f.Set(x, y, sum/float64(count))
			return field.Continue
		})
	}
	return f
}

// Caves configures cellular-automata cave generation. Cells end up 1
// (wall) or 0 (open).
type Caves struct {
	// FillChance is the probability a cell starts as wall (0..1).
	FillChance float64

	// Passes is the number of automaton iterations.
	Passes int

	// WallThreshold is the 3x3 wall count at or above which a cell
	// becomes wall. Out-of-bounds neighbors count as walls.
	WallThreshold int

	// Seed drives the initial random fill. 0 = derive from current time.
	Seed int64
}

// DefaultCaves returns a generator with the package defaults.
func DefaultCaves() Caves {
	return Caves{
		FillChance:    parameter.CaveDefaultFillChance,
		Passes:        parameter.CaveDefaultPasses,
		WallThreshold: parameter.CaveDefaultWallThreshold,
	}
}

// Generate overwrites f with a cave layout: random fill, then Passes
// rounds of the wall-majority rule, each round double-buffered through a
// snapshot of the previous state.
func (c Caves) Generate(f *field.Field) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	f.ForEach(func(f *field.Field, x, y int, value float64) bool {
		if rng.Float64() < c.FillChance {
			f.Set(x, y, 1)
		} else {
			f.Set(x, y, 0)
		}
		return field.Continue
	})

	for p := 0; p < c.Passes; p++ {
		prev := f.Clone()
		prev.ForEach(func(prev *field.Field, x, y int, value float64) bool {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !prev.InBounds(nx, ny) || prev.Get(nx, ny) >= 1 {
						walls++
					}
				}
			}
			if walls >= c.WallThreshold {
				f.Set(x, y, 1)
			} else {
				f.Set(x, y, 0)
			}
			return field.Continue
		})
	}
}
