// Package pipeline provides the render-and-encode pipeline for mandelband.
//
// This package implements the complete render → encode pipeline used by the
// CLI. By centralizing this logic behind a Runner, caching and logging
// behave the same for every entry point.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Render: Fill a pixel buffer with the escape-time image (pkg/render)
//  2. Encode: Produce output artifacts in the requested formats (pkg/sink)
//
// Rendering is deterministic, so encoded artifacts are cached under a key
// derived from the render parameters; a cache hit skips both stages. The
// worker count is deliberately excluded from the key: band partitioning
// never changes the output bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Bounds:   mandel.PixelBounds{Width: 1000, Height: 750},
//	    Viewport: mandel.Viewport{UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1.0, 0.20)},
//	    Formats:  []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := result.Artifacts["png"]
package pipeline

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
	"github.com/mandelband/mandelband/pkg/render"
	"github.com/mandelband/mandelband/pkg/sink"
)

// Options contains all configuration for the render pipeline.
type Options struct {
	// Bounds is the output raster size in pixels.
	Bounds mandel.PixelBounds

	// Viewport is the rectangle of the complex plane to render.
	Viewport mandel.Viewport

	// Workers is the number of parallel render bands.
	// Defaults to render.DefaultWorkers.
	Workers int

	// Formats are the artifact formats to encode ("png", "pgm").
	// Defaults to ["png"].
	Formats []string

	// Refresh bypasses cache reads, forcing a re-render. Fresh artifacts
	// are still written back to the cache.
	Refresh bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Bounds.Width <= 0 || o.Bounds.Height <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidBounds,
			"dimensions must be positive, got %dx%d", o.Bounds.Width, o.Bounds.Height)
	}
	if o.Workers < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "workers must be positive, got %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = render.DefaultWorkers
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{sink.FormatPNG}
	}
	for _, f := range o.Formats {
		if !sink.ValidFormats[f] {
			return apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format: %s (must be 'png' or 'pgm')", f)
		}
	}
	return nil
}

// artifactKey builds the cache key for one encoded artifact. The key pins
// everything that determines the output bytes: bounds, viewport corners
// (exact hex float encoding), the escape limit, and the format. Workers are
// excluded because partitioning does not affect the result.
func artifactKey(o Options, format string) string {
	var b strings.Builder
	b.WriteString("artifact:")
	b.WriteString(strconv.Itoa(o.Bounds.Width))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(o.Bounds.Height))
	for _, f := range []float64{
		real(o.Viewport.UpperLeft), imag(o.Viewport.UpperLeft),
		real(o.Viewport.LowerRight), imag(o.Viewport.LowerRight),
	} {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(f, 'x', -1, 64))
	}
	b.WriteString("|limit=")
	b.WriteString(strconv.Itoa(render.EscapeLimit))
	b.WriteByte('|')
	b.WriteString(format)
	return b.String()
}

// Result holds the pipeline output.
type Result struct {
	// Artifacts maps format name to encoded bytes.
	Artifacts map[string][]byte

	// Stats records stage timings.
	Stats Stats

	// CacheHits maps format name to whether the artifact came from cache.
	CacheHits map[string]bool
}

// Stats records execution times for pipeline stages.
type Stats struct {
	RenderTime time.Duration
	EncodeTime time.Duration
}

// Rendered reports whether any artifact required an actual render
// (i.e. was not served from cache).
func (r *Result) Rendered() bool {
	for _, hit := range r.CacheHits {
		if !hit {
			return true
		}
	}
	return false
}
