// Package render fills a grayscale pixel buffer with a Mandelbrot-set image,
// in parallel across horizontal bands.
//
// # Overview
//
// The package splits the image into contiguous strips of whole rows, one per
// worker, and renders each strip into its own disjoint sub-slice of a single
// shared buffer:
//
//	pixels := make([]byte, bounds.Pixels())
//	err := render.Render(pixels, bounds, viewport, render.Options{Workers: 8})
//
// # Concurrency
//
// [Partition] produces bands whose row ranges cover the image exactly once
// with no overlap. [Render] hands each band's sub-slice to one goroutine and
// waits on a single join barrier; because no two bands share a byte, the
// workers need no locks, atomics, or channels. Rendering is deterministic:
// the same bounds and viewport produce byte-identical output for any worker
// count.
//
// # Shading
//
// Each pixel is shaded from the escape time of its point under z = z*z + c
// (see [github.com/mandelband/mandelband/pkg/mandel]): points that never
// escape within 255 iterations are black (0), and escaping points are
// written as 255 minus the escape iteration, so the fastest escapes are the
// brightest. This matches the classic grayscale plotter convention.
package render
