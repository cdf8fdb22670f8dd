package generate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scalarmap/parameter"
)

// Preset bundles field dimensions and generator parameters for loading
// from a YAML file.
type Preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Seed        int64   `yaml:"seed"`

	SmoothPasses int `yaml:"smooth_passes"`
}

// LoadPreset reads and parses a YAML preset file, filling unset values
// with package defaults.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	p.applyDefaults()
	return &p, nil
}

func (p *Preset) applyDefaults() {
	if p.Width == 0 {
		p.Width = 80
	}
	if p.Height == 0 {
		p.Height = 24
	}
	if p.Octaves == 0 {
		p.Octaves = parameter.NoiseDefaultOctaves
	}
	if p.Frequency == 0 {
		p.Frequency = parameter.NoiseDefaultFrequency
	}
	if p.Persistence == 0 {
		p.Persistence = parameter.NoiseDefaultPersistence
	}
	if p.Lacunarity == 0 {
		p.Lacunarity = parameter.NoiseDefaultLacunarity
	}
	return
}

// Noise builds the noise generator described by the preset.
func (p *Preset) Noise() Noise {
	return Noise{
		Octaves:     p.Octaves,
		Frequency:   p.Frequency,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
		Seed:        p.Seed,
	}
}
