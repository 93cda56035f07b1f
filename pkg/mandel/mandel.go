// Package mandel implements the numeric core of the renderer: the mapping
// from pixel coordinates to points of the complex plane, and the escape-time
// iteration that decides how each point is shaded.
//
// Everything in this package is a pure function over plain values. The same
// inputs always produce bit-identical outputs, no matter which goroutine
// calls them - the band renderer in pkg/render relies on this to produce
// the same image regardless of how rows are split across workers.
package mandel

// PixelBounds describes the size of the output raster in pixels.
type PixelBounds struct {
	Width  int
	Height int
}

// Pixels returns the number of pixels in the raster.
func (b PixelBounds) Pixels() int {
	return b.Width * b.Height
}

// Viewport is the axis-aligned rectangle of the complex plane that is mapped
// onto the pixel grid. UpperLeft has the smaller real part and the larger
// imaginary part: pixel rows grow downward while the imaginary axis grows
// upward, so the top row of the image corresponds to the largest imaginary
// values. The corners are taken on faith; callers are responsible for
// supplying a non-degenerate rectangle.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PixelToPoint maps the pixel at (col, row) to the corresponding point of
// the complex plane, by linear interpolation between the viewport corners.
//
// col may equal bounds.Width and row may equal bounds.Height: the points one
// past the last pixel map exactly onto the lower-right corner. Zero-sized
// bounds are a precondition violation (division by zero); this function does
// not validate them.
func PixelToPoint(bounds PixelBounds, col, row int, vp Viewport) complex128 {
	width := real(vp.LowerRight) - real(vp.UpperLeft)
	height := imag(vp.UpperLeft) - imag(vp.LowerRight)
	return complex(
		real(vp.UpperLeft)+float64(col)*width/float64(bounds.Width),
		imag(vp.UpperLeft)-float64(row)*height/float64(bounds.Height),
	)
}

// EscapeTime iterates z = z*z + c from z = 0 and reports the first iteration
// at which the orbit leaves the disk of radius 2, using the squared
// magnitude against 4 to avoid a square root.
//
// The test runs before each step, so z0 = 0 is always examined first and
// never escapes; for a point like c = 3 the escape is therefore detected at
// iteration 1, after one step. If the orbit stays bounded for limit
// iterations, escaped is false and iter is meaningless.
func EscapeTime(c complex128, limit int) (iter int, escaped bool) {
	z := complex(0, 0)
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}
