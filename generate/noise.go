// Package generate fills fields with procedural content: fractal value
// noise, cellular-automata caves, smoothing and normalization passes.
// All generators are deterministic for a fixed seed.
package generate

import (
	"math"
	"time"

	"github.com/lixenwraith/scalarmap/field"
	"github.com/lixenwraith/scalarmap/parameter"
)

// Noise configures fractal value-noise generation.
type Noise struct {
	// Octaves is the number of noise layers summed per cell.
	Octaves int

	// Frequency is the lattice scale of the first octave, in cells^-1.
	Frequency float64

	// Persistence scales amplitude per octave (0..1, lower = smoother).
	Persistence float64

	// Lacunarity scales frequency per octave (usually 2).
	Lacunarity float64

	// Seed selects the noise lattice. 0 = derive from current time.
	Seed int64
}

// DefaultNoise returns a generator with the package defaults.
func DefaultNoise() Noise {
	return Noise{
		Octaves:     parameter.NoiseDefaultOctaves,
		Frequency:   parameter.NoiseDefaultFrequency,
		Persistence: parameter.NoiseDefaultPersistence,
		Lacunarity:  parameter.NoiseDefaultLacunarity,
	}
}

// Generate fills every cell of f with fractal value noise normalized to
// [0, 1]. The field's previous contents are overwritten.
func (n Noise) Generate(f *field.Field) {
	n.generateRows(f, 0, f.Height(), n.resolveSeed())
}

// resolveSeed substitutes a time-derived seed for the zero value.
func (n Noise) resolveSeed() int64 {
	if n.Seed != 0 {
		return n.Seed
	}
	return time.Now().UnixNano()
}

// generateRows fills rows [fromY, toY). Rows are disjoint index ranges,
// so distinct row bands may be generated concurrently.
func (n Noise) generateRows(f *field.Field, fromY, toY int, seed int64) {
	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}

	// Total amplitude of the octave sum, for normalization
	total := 0.0
	amp := 1.0
	for o := 0; o < octaves; o++ {
		total += amp
		amp *= n.Persistence
	}
	if total == 0 {
		total = 1
	}

	for y := fromY; y < toY; y++ {
		for x := 0; x < f.Width(); x++ {
			sum := 0.0
			freq := n.Frequency
			amp := 1.0
			for o := 0; o < octaves; o++ {
				sum += amp * valueNoise(seed+int64(o), float64(x)*freq, float64(y)*freq)
				freq *= n.Lacunarity
				amp *= n.Persistence
			}
			f.Set(x, y, sum/total)
		}
	}
}

// valueNoise returns smoothly interpolated lattice noise in [0, 1].
func valueNoise(seed int64, x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)

	xi := int64(x0)
	yi := int64(y0)

	v00 := latticeValue(seed, xi, yi)
	v10 := latticeValue(seed, xi+1, yi)
	v01 := latticeValue(seed, xi, yi+1)
	v11 := latticeValue(seed, xi+1, yi+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// latticeValue hashes a lattice corner to a deterministic value in [0, 1).
// Integer mix in the splitmix64 family.
func latticeValue(seed, x, y int64) float64 {
	h := uint64(seed) ^ uint64(x)*0x9e3779b97f4a7c15 ^ uint64(y)*0xbf58476d1ce4e5b9
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return float64(h>>11) / float64(1<<53)
}

// Normalize rescales every cell of f linearly to [0, 1]. A constant field
// is set to 0. Returns f for chaining.
func Normalize(f *field.Field) *field.Field {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	f.ForEach(func(f *field.Field, x, y int, value float64) bool {
		if value < lo {
			lo = value
		}
		if value > hi {
			hi = value
		}
		return field.Continue
	})

	if hi == lo {
		return f.Fill(0)
	}
	return f.SubScalar(lo).DivScalar(hi - lo)
}
