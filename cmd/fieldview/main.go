// fieldview is an interactive terminal heat-map viewer for generated
// scalar fields. Keys: n/space = new seed, s = smoothing pass,
// c = toggle caves/noise, q/Esc = quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scalarmap/field"
	"github.com/lixenwraith/scalarmap/generate"
	"github.com/lixenwraith/scalarmap/render"
)

var seedFlag = flag.Int64("seed", 0, "initial seed (0 = random)")

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nFIELDVIEW CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := screen.Size()
	f := field.New(w, h)
	caves := false
	regenerate(f, seed, caves)
	draw(screen, f, caves)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h = screen.Size()
			f = field.New(w, h)
			regenerate(f, seed, caves)
			screen.Sync()
			draw(screen, f, caves)

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Rune() == 'q':
				return
			case ev.Rune() == 'n' || ev.Rune() == ' ':
				seed++
				regenerate(f, seed, caves)
				draw(screen, f, caves)
			case ev.Rune() == 's':
				generate.Smooth(f, 1)
				if !caves {
					generate.Normalize(f)
				}
				draw(screen, f, caves)
			case ev.Rune() == 'c':
				caves = !caves
				regenerate(f, seed, caves)
				draw(screen, f, caves)
			}
		}
	}
}

func regenerate(f *field.Field, seed int64, caves bool) {
	if caves {
		c := generate.DefaultCaves()
		c.Seed = seed
		c.Generate(f)
		return
	}
	n := generate.DefaultNoise()
	n.Seed = seed
	n.Generate(f)
}

func draw(screen tcell.Screen, f *field.Field, caves bool) {
	f.ForEach(func(f *field.Field, x, y int, value float64) bool {
		style := tcell.StyleDefault.Background(render.HeightColor(value))
		if caves {
			// Binary layouts read better as solid blocks
			style = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 30))
			if value >= 1 {
				style = tcell.StyleDefault.Background(tcell.NewRGBColor(160, 150, 130))
			}
		}
		screen.SetContent(x, y, ' ', nil, style)
		return field.Continue
	})
	screen.Show()
}
