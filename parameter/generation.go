package parameter

// Noise generation defaults
const (
	// NoiseDefaultOctaves is the number of noise layers summed per cell
	NoiseDefaultOctaves = 4

	// NoiseDefaultFrequency is the first-octave lattice scale (cells^-1)
	NoiseDefaultFrequency = 0.05

	// NoiseDefaultPersistence is the per-octave amplitude falloff
	NoiseDefaultPersistence = 0.5

	// NoiseDefaultLacunarity is the per-octave frequency multiplier
	NoiseDefaultLacunarity = 2.0
)

// Cellular-automata cave defaults
const (
	// CaveDefaultFillChance is the initial wall probability
	CaveDefaultFillChance = 0.45

	// CaveDefaultPasses is the number of automaton iterations
	CaveDefaultPasses = 4

	// CaveDefaultWallThreshold is the 3x3 wall count that keeps a cell solid
	CaveDefaultWallThreshold = 5
)
