package generate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/scalarmap/field"
)

// GenerateParallel fills f with the same noise as Generate, splitting the
// work into row bands across workers goroutines. Bands are non-overlapping
// index ranges, so no locking is needed on the field. workers <= 0 uses
// GOMAXPROCS. Output is identical to Generate for the same seed.
func (n Noise) GenerateParallel(ctx context.Context, f *field.Field, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > f.Height() {
		workers = f.Height()
	}
	if workers <= 1 {
		n.Generate(f)
		return ctx.Err()
	}

	// Resolve once so every band samples the same lattice
	seed := n.resolveSeed()

	g, ctx := errgroup.WithContext(ctx)

	rows := f.Height()
	band := (rows + workers - 1) / workers
	for fromY := 0; fromY < rows; fromY += band {
		fromY, toY := fromY, fromY+band
		if toY > rows {
			toY = rows
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n.generateRows(f, fromY, toY, seed)
			return nil
		})
	}

	return g.Wait()
}
