package render

import (
	"github.com/mandelband/mandelband/pkg/mandel"
)

// Band is a contiguous strip of whole image rows. Bands carry dispatch
// geometry only: every worker evaluates its pixels through the one global
// pixel-to-point mapping, so the band layout can never influence the
// rendered bytes.
type Band struct {
	Top  int // first row of the band in the full image
	Rows int // number of rows in the band
}

// Partition splits the image into at most `workers` disjoint horizontal
// bands. The union of the bands' row ranges covers [0, height) exactly once;
// this disjointness is what allows workers to write into one shared buffer
// without synchronization.
//
// Rows per band is computed as height/workers + 1. This slightly
// over-allocates compared to a ceiling division, so the final band is often
// shorter and fewer than `workers` bands may be produced; the exact policy
// is kept for output-compatibility with the classic plotter it mirrors.
func Partition(bounds mandel.PixelBounds, workers int) []Band {
	rowsPerBand := bounds.Height/workers + 1

	var bands []Band
	for top := 0; top < bounds.Height; top += rowsPerBand {
		rows := rowsPerBand
		if top+rows > bounds.Height {
			rows = bounds.Height - top
		}
		bands = append(bands, Band{Top: top, Rows: rows})
	}
	return bands
}
