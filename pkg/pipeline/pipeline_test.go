package pipeline

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mandelband/mandelband/pkg/cache"
	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
)

func testOptions() Options {
	return Options{
		Bounds:   mandel.PixelBounds{Width: 40, Height: 30},
		Viewport: mandel.Viewport{UpperLeft: complex(-2.5, 1.25), LowerRight: complex(1.0, -1.25)},
		Formats:  []string{"png", "pgm"},
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Bounds: mandel.PixelBounds{Width: 10, Height: 10}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Workers != 8 {
		t.Errorf("Workers default = %d, want 8", opts.Workers)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "png" {
		t.Errorf("Formats default = %v, want [png]", opts.Formats)
	}
}

func TestValidateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperrors.Code
	}{
		{"zero bounds", Options{}, apperrors.ErrCodeInvalidBounds},
		{"negative workers", Options{Bounds: mandel.PixelBounds{Width: 1, Height: 1}, Workers: -2}, apperrors.ErrCodeInvalidInput},
		{"bad format", Options{Bounds: mandel.PixelBounds{Width: 1, Height: 1}, Formats: []string{"bmp"}}, apperrors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q", apperrors.GetCode(err), tt.code)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, quietLogger())

	result, err := runner.Execute(context.Background(), testOptions())
	if err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{"png", "pgm"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("artifact %q is empty", format)
		}
		if result.CacheHits[format] {
			t.Errorf("artifact %q should not be a cache hit with NullCache", format)
		}
	}
	if !result.Rendered() {
		t.Error("Rendered() should report true for a fresh render")
	}
	if result.Stats.RenderTime <= 0 {
		t.Error("RenderTime should be recorded")
	}
}

func TestExecuteUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, quietLogger())
	ctx := context.Background()

	first, err := runner.Execute(ctx, testOptions())
	if err != nil {
		t.Fatal(err)
	}

	second, err := runner.Execute(ctx, testOptions())
	if err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{"png", "pgm"} {
		if !second.CacheHits[format] {
			t.Errorf("second run should hit the cache for %q", format)
		}
		if !bytes.Equal(first.Artifacts[format], second.Artifacts[format]) {
			t.Errorf("cached artifact %q differs from fresh one", format)
		}
	}
	if second.Rendered() {
		t.Error("fully cached run should not report Rendered()")
	}
}

func TestExecuteCacheKeyIgnoresWorkers(t *testing.T) {
	// Partitioning never changes the output bytes, so renders that differ
	// only in worker count share cache entries.
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, quietLogger())
	ctx := context.Background()

	opts := testOptions()
	opts.Workers = 1
	if _, err := runner.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}

	opts.Workers = 5
	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHits["png"] {
		t.Error("different worker count should still hit the cache")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, quietLogger())
	ctx := context.Background()

	if _, err := runner.Execute(ctx, testOptions()); err != nil {
		t.Fatal(err)
	}

	opts := testOptions()
	opts.Refresh = true
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheHits["png"] {
		t.Error("Refresh should bypass cache reads")
	}
}

func TestArtifactKeyDistinguishesParameters(t *testing.T) {
	base := testOptions()

	other := testOptions()
	other.Bounds.Width++
	if artifactKey(base, "png") == artifactKey(other, "png") {
		t.Error("key should depend on bounds")
	}

	other = testOptions()
	other.Viewport.UpperLeft = complex(-2.5000001, 1.25)
	if artifactKey(base, "png") == artifactKey(other, "png") {
		t.Error("key should depend on viewport corners exactly")
	}

	if artifactKey(base, "png") == artifactKey(base, "pgm") {
		t.Error("key should depend on format")
	}

	other = testOptions()
	other.Workers = 3
	if artifactKey(base, "png") != artifactKey(other, "png") {
		t.Error("key should not depend on workers")
	}
}
