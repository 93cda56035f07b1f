package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mandelband/mandelband/pkg/cache"
	"github.com/mandelband/mandelband/pkg/mandel"
	"github.com/mandelband/mandelband/pkg/observability"
	"github.com/mandelband/mandelband/pkg/render"
	"github.com/mandelband/mandelband/pkg/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete render → encode pipeline with caching.
// Artifacts present in the cache are returned without rendering; the pixel
// buffer is rendered at most once regardless of how many formats miss.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheHits: make(map[string]bool),
	}

	// Rendered lazily on the first cache miss.
	var pixels []byte

	for _, format := range opts.Formats {
		key := artifactKey(opts, format)

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("cache get: %w", err)
			}
			if hit {
				observability.Cache().OnCacheHit(ctx, format)
				r.Logger.Debug("artifact cached", "format", format, "bytes", len(data))
				result.Artifacts[format] = data
				result.CacheHits[format] = true
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, format)

		if pixels == nil {
			rendered, renderTime, err := r.renderPixels(ctx, opts)
			if err != nil {
				return nil, fmt.Errorf("render: %w", err)
			}
			pixels = rendered
			result.Stats.RenderTime = renderTime
		}

		encodeStart := time.Now()
		data, err := sink.Encode(format, pixels, opts.Bounds)
		encodeTime := time.Since(encodeStart)
		observability.Render().OnEncodeComplete(ctx, format, len(data), encodeTime, err)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", format, err)
		}
		result.Stats.EncodeTime += encodeTime

		r.Logger.Info("encoded artifact", "format", format, "bytes", len(data), "duration", encodeTime)

		if err := r.Cache.Set(ctx, key, data, 0); err != nil {
			// Failing to populate the cache is not fatal.
			r.Logger.Warn("cache set failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}

		result.Artifacts[format] = data
		result.CacheHits[format] = false
	}

	return result, nil
}

// renderPixels fills a fresh pixel buffer for the options' bounds and
// viewport.
func (r *Runner) renderPixels(ctx context.Context, opts Options) ([]byte, time.Duration, error) {
	observability.Render().OnRenderStart(ctx, opts.Bounds.Width, opts.Bounds.Height, opts.Workers)

	start := time.Now()
	pixels := make([]byte, opts.Bounds.Pixels())
	err := render.Render(pixels, opts.Bounds, opts.Viewport, render.Options{Workers: opts.Workers})
	duration := time.Since(start)

	observability.Render().OnRenderComplete(ctx, opts.Bounds.Width, opts.Bounds.Height, duration, err)
	if err != nil {
		return nil, duration, err
	}

	r.Logger.Info("rendered image",
		"bounds", fmt.Sprintf("%dx%d", opts.Bounds.Width, opts.Bounds.Height),
		"viewport", describeViewport(opts.Viewport),
		"workers", opts.Workers,
		"duration", duration)

	return pixels, duration, nil
}

func describeViewport(vp mandel.Viewport) string {
	return fmt.Sprintf("(%g,%g)..(%g,%g)",
		real(vp.UpperLeft), imag(vp.UpperLeft),
		real(vp.LowerRight), imag(vp.LowerRight))
}
