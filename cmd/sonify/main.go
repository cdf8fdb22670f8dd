// sonify plays one row of a generated scalar field as a frequency sweep:
// each cell becomes a short tone, low values low pitch, high values high
// pitch. A toy, but a surprisingly quick way to hear how rough a map is.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/scalarmap/field"
	"github.com/lixenwraith/scalarmap/generate"
)

const (
	sampleRate = beep.SampleRate(44100)
	minFreq    = 220.0
	maxFreq    = 880.0
)

var (
	widthFlag  = flag.Int("width", 64, "field width in cells")
	rowFlag    = flag.Int("row", 0, "row to play")
	seedFlag   = flag.Int64("seed", 0, "generation seed (0 = random)")
	cellMsFlag = flag.Int("cellms", 60, "milliseconds per cell")
)

func main() {
	flag.Parse()

	f := field.New(*widthFlag, *rowFlag+1)
	n := generate.DefaultNoise()
	n.Seed = *seedFlag
	n.Generate(f)

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Fatalf("Audio initialization failed: %v", err)
	}

	row := make([]float64, 0, f.Width())
	f.ForEachFrom(func(f *field.Field, x, y int, value float64) bool {
		if y != *rowFlag {
			return field.Stop
		}
		row = append(row, value)
		return field.Continue
	}, 0, *rowFlag)

	fmt.Printf("playing row %d (%d cells)\n", *rowFlag, len(row))

	done := make(chan struct{})
	streamer := newRowStreamer(row, *cellMsFlag)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done
}

// rowStreamer renders one sine tone per cell, pitch mapped from the cell
// value, with a short attack/release envelope to avoid clicks.
type rowStreamer struct {
	row     []float64
	perCell int // samples per cell
	pos     int
	phase   float64
}

func newRowStreamer(row []float64, cellMs int) *rowStreamer {
	return &rowStreamer{
		row:     row,
		perCell: sampleRate.N(time.Duration(cellMs) * time.Millisecond),
	}
}

func (s *rowStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	total := len(s.row) * s.perCell
	for i := range samples {
		if s.pos >= total {
			return i, i > 0
		}

		cell := s.pos / s.perCell
		value := s.row[cell]
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		freq := minFreq + (maxFreq-minFreq)*value

		// Phase accumulation keeps the wave continuous across pitch changes
		s.phase += 2 * math.Pi * freq / float64(sampleRate)

		// Envelope within the cell: 10% attack, 10% release
		cellPos := float64(s.pos%s.perCell) / float64(s.perCell)
		envelope := 1.0
		if cellPos < 0.1 {
			envelope = cellPos / 0.1
		} else if cellPos > 0.9 {
			envelope = (1 - cellPos) / 0.1
		}

		sample := 0.25 * envelope * math.Sin(s.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		s.pos++
	}
	return len(samples), true
}

func (s *rowStreamer) Err() error {
	return nil
}
