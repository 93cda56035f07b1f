package render

import (
	"errors"
	"sync"

	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
)

const (
	// EscapeLimit is the iteration cap for the escape-time evaluation. It is
	// fixed at 255 so that every possible escape iteration maps onto a
	// distinct byte intensity.
	EscapeLimit = 255

	// DefaultWorkers is the number of parallel bands used when Options.Workers
	// is zero.
	DefaultWorkers = 8
)

// Options tunes a render. The zero value selects the defaults.
type Options struct {
	// Workers is the number of parallel bands to split the image into.
	// Defaults to DefaultWorkers.
	Workers int
}

// Gray renders the full image sequentially: it fills pixels, which must hold
// exactly bounds.Width*bounds.Height bytes, with the escape-time shading of
// the given viewport in row-major order.
//
// Escaping points are written as 255 minus their escape iteration; points
// that stay bounded for all 255 iterations are written as 0.
func Gray(pixels []byte, bounds mandel.PixelBounds, vp mandel.Viewport) error {
	if len(pixels) != bounds.Pixels() {
		return apperrors.New(apperrors.ErrCodeInvalidBounds,
			"pixel buffer holds %d bytes, bounds %dx%d require %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Pixels())
	}
	grayRows(pixels, bounds, vp, 0, bounds.Height)
	return nil
}

// grayRows renders image rows [top, top+rows) into pixels, which holds
// exactly rows*bounds.Width bytes. Every pixel goes through the global
// mapping with its absolute row index, so the same pixel yields the same
// byte no matter which band it lands in. Band-local interpolation would
// not: rebuilding the mapping from a band's own corners perturbs the low
// bits of the coordinates, and near the real axis that is enough to flip an
// interior pixel into an escape.
func grayRows(pixels []byte, bounds mandel.PixelBounds, vp mandel.Viewport, top, rows int) {
	for r := 0; r < rows; r++ {
		for col := 0; col < bounds.Width; col++ {
			point := mandel.PixelToPoint(bounds, col, top+r, vp)
			var shade byte
			if iter, escaped := mandel.EscapeTime(point, EscapeLimit); escaped {
				shade = byte(255 - iter)
			}
			pixels[r*bounds.Width+col] = shade
		}
	}
}

// Render fills the whole pixel buffer with the image of the viewport,
// dispatching one goroutine per band. It blocks until every band is done and
// returns the joined errors of any failed bands; on error the buffer
// contents are unspecified and must not be persisted.
//
// Each goroutine owns an exclusive, non-overlapping sub-slice of pixels for
// the duration of the call, so the concurrent writes need no locking. The
// output is bit-identical for every worker count: bands only decide which
// goroutine computes which rows, never how a row is computed.
func Render(pixels []byte, bounds mandel.PixelBounds, vp mandel.Viewport, opts Options) error {
	workers := opts.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}
	if workers < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "workers must be positive, got %d", workers)
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidBounds, "dimensions must be positive, got %dx%d", bounds.Width, bounds.Height)
	}
	if len(pixels) != bounds.Pixels() {
		return apperrors.New(apperrors.ErrCodeInvalidBounds,
			"pixel buffer holds %d bytes, bounds %dx%d require %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Pixels())
	}

	bands := Partition(bounds, workers)
	errs := make([]error, len(bands))

	var wg sync.WaitGroup
	for i, band := range bands {
		start := band.Top * bounds.Width
		chunk := pixels[start : start+band.Rows*bounds.Width]

		wg.Add(1)
		go func(i int, band Band, chunk []byte) {
			defer wg.Done()
			// errs slots are disjoint per band, same as the pixel chunks.
			errs[i] = renderBand(chunk, bounds, vp, band)
		}(i, band, chunk)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// renderBand renders one band's rows into its chunk of the shared buffer.
func renderBand(chunk []byte, bounds mandel.PixelBounds, vp mandel.Viewport, band Band) error {
	if len(chunk) != band.Rows*bounds.Width {
		return apperrors.New(apperrors.ErrCodeInternal,
			"band at row %d has a %d-byte chunk, %d rows require %d",
			band.Top, len(chunk), band.Rows, band.Rows*bounds.Width)
	}
	grayRows(chunk, bounds, vp, band.Top, band.Rows)
	return nil
}
