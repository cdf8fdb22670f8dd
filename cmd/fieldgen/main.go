// fieldgen generates a scalar field from flags or a YAML preset and prints
// it to stdout as ASCII shading or as the raw cell dump.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/scalarmap/field"
	"github.com/lixenwraith/scalarmap/generate"
	"github.com/lixenwraith/scalarmap/parameter"
	"github.com/lixenwraith/scalarmap/render"
)

var (
	widthFlag       = flag.Int("width", 80, "field width in cells")
	heightFlag      = flag.Int("height", 24, "field height in cells")
	seedFlag        = flag.Int64("seed", 0, "generation seed (0 = random)")
	octavesFlag     = flag.Int("octaves", parameter.NoiseDefaultOctaves, "noise octaves")
	freqFlag        = flag.Float64("freq", parameter.NoiseDefaultFrequency, "first-octave frequency")
	persistenceFlag = flag.Float64("persistence", parameter.NoiseDefaultPersistence, "per-octave amplitude falloff")
	lacunarityFlag  = flag.Float64("lacunarity", parameter.NoiseDefaultLacunarity, "per-octave frequency multiplier")
	smoothFlag      = flag.Int("smooth", 0, "box-blur smoothing passes")
	cavesFlag       = flag.Bool("caves", false, "generate a cellular-automata cave layout instead of noise")
	presetFlag      = flag.String("preset", "", "YAML preset file (overrides the generator flags)")
	dumpFlag        = flag.Bool("dump", false, "print the raw [x,y|value] cell dump instead of ASCII shading")
	workersFlag     = flag.Int("workers", 0, "parallel generation workers (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()

	w, h := *widthFlag, *heightFlag
	n := generate.Noise{
		Octaves:     *octavesFlag,
		Frequency:   *freqFlag,
		Persistence: *persistenceFlag,
		Lacunarity:  *lacunarityFlag,
		Seed:        *seedFlag,
	}
	smooth := *smoothFlag

	if *presetFlag != "" {
		p, err := generate.LoadPreset(*presetFlag)
		if err != nil {
			log.Fatal(err)
		}
		w, h = p.Width, p.Height
		n = p.Noise()
		smooth = p.SmoothPasses
	}
	if w <= 0 || h <= 0 {
		log.Fatalf("dimensions must be positive, got %dx%d", w, h)
	}

	f := field.New(w, h)

	start := time.Now()
	if *cavesFlag {
		c := generate.DefaultCaves()
		c.Seed = *seedFlag
		c.Generate(f)
	} else {
		if err := n.GenerateParallel(context.Background(), f, *workersFlag); err != nil {
			log.Fatal(err)
		}
		if smooth > 0 {
			generate.Smooth(f, smooth)
			generate.Normalize(f)
		}
	}
	dur := time.Since(start)

	if *dumpFlag {
		fmt.Print(f.String())
	} else {
		fmt.Print(render.ASCII(f))
	}
	fmt.Fprintf(os.Stderr, "generated %dx%d in %v\n", w, h, dur)
}
