package observability

import (
	"context"
	"testing"
	"time"
)

type countingRenderHooks struct {
	starts, completes, encodes int
}

func (h *countingRenderHooks) OnRenderStart(ctx context.Context, w, ht, workers int) { h.starts++ }
func (h *countingRenderHooks) OnRenderComplete(ctx context.Context, w, ht int, d time.Duration, err error) {
	h.completes++
}
func (h *countingRenderHooks) OnEncodeComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	h.encodes++
}

type countingCacheHooks struct {
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(ctx context.Context, format string)        { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(ctx context.Context, format string)       { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(ctx context.Context, format string, n int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Must not panic.
	Render().OnRenderStart(ctx, 100, 100, 8)
	Render().OnRenderComplete(ctx, 100, 100, time.Second, nil)
	Render().OnEncodeComplete(ctx, "png", 1024, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "png")
	Cache().OnCacheMiss(ctx, "pgm")
	Cache().OnCacheSet(ctx, "png", 1024)
}

func TestSetRenderHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingRenderHooks{}
	SetRenderHooks(h)

	ctx := context.Background()
	Render().OnRenderStart(ctx, 10, 10, 2)
	Render().OnRenderComplete(ctx, 10, 10, time.Millisecond, nil)
	Render().OnEncodeComplete(ctx, "png", 1, time.Millisecond, nil)

	if h.starts != 1 || h.completes != 1 || h.encodes != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", h.starts, h.completes, h.encodes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "png")
	Cache().OnCacheMiss(ctx, "png")
	Cache().OnCacheSet(ctx, "png", 5)

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", h.hits, h.misses, h.sets)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingRenderHooks{}
	SetRenderHooks(h)
	SetRenderHooks(nil)

	Render().OnRenderStart(context.Background(), 1, 1, 1)
	if h.starts != 1 {
		t.Error("nil registration should keep the previous hooks")
	}
}
