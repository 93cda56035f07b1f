package mandel

import (
	"testing"
)

func TestPixelToPoint(t *testing.T) {
	bounds := PixelBounds{Width: 100, Height: 100}
	vp := Viewport{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	tests := []struct {
		name     string
		col, row int
		want     complex128
	}{
		{"interior", 25, 75, complex(-0.5, -0.5)},
		{"top-right corner", 100, 0, complex(1.0, 1.0)},
		{"upper-left is exact", 0, 0, complex(-1.0, 1.0)},
		{"lower-right is exact", 100, 100, complex(1.0, -1.0)},
		{"center", 50, 50, complex(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelToPoint(bounds, tt.col, tt.row, vp); got != tt.want {
				t.Errorf("PixelToPoint(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestPixelToPointCornersExact(t *testing.T) {
	// (0,0) must map onto the upper-left corner and (width,height) onto the
	// lower-right corner bit-exactly, for arbitrary viewports.
	bounds := PixelBounds{Width: 1000, Height: 750}
	vp := Viewport{UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1.0, 0.20)}

	if got := PixelToPoint(bounds, 0, 0, vp); got != vp.UpperLeft {
		t.Errorf("pixel (0,0) = %v, want upper-left %v", got, vp.UpperLeft)
	}
	if got := PixelToPoint(bounds, bounds.Width, bounds.Height, vp); got != vp.LowerRight {
		t.Errorf("pixel (width,height) = %v, want lower-right %v", got, vp.LowerRight)
	}
}

func TestPixelToPointDeterministic(t *testing.T) {
	bounds := PixelBounds{Width: 640, Height: 480}
	vp := Viewport{UpperLeft: complex(-2.5, 1.25), LowerRight: complex(1.0, -1.25)}

	for _, px := range [][2]int{{0, 0}, {320, 240}, {639, 479}, {640, 480}} {
		a := PixelToPoint(bounds, px[0], px[1], vp)
		b := PixelToPoint(bounds, px[0], px[1], vp)
		if a != b {
			t.Fatalf("PixelToPoint not deterministic at %v: %v != %v", px, a, b)
		}
	}
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name        string
		c           complex128
		limit       int
		wantIter    int
		wantEscaped bool
	}{
		// The origin's orbit stays at zero forever.
		{"origin never escapes", complex(0, 0), 255, 0, false},
		{"origin never escapes tiny limit", complex(0, 0), 1, 0, false},
		// For c = 3, z0 = 0 passes the test, z1 = 3 has |z|² = 9 > 4, so the
		// escape is detected at iteration 1.
		{"c=3 escapes at 1", complex(3, 0), 255, 1, true},
		{"c=-3 escapes at 1", complex(-3, 0), 255, 1, true},
		{"c=3i escapes at 1", complex(0, 3), 255, 1, true},
		// Interior point of the main cardioid.
		{"c=-0.5 stays bounded", complex(-0.5, 0), 255, 0, false},
		// c = -2 lies on the boundary: the orbit lands on 2 and stays.
		{"c=-2 stays bounded", complex(-2, 0), 255, 0, false},
		// With limit 1 only z0 = 0 is tested, which cannot escape.
		{"limit 1 tests only z0", complex(3, 0), 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iter, escaped := EscapeTime(tt.c, tt.limit)
			if escaped != tt.wantEscaped {
				t.Fatalf("EscapeTime(%v, %d) escaped = %v, want %v", tt.c, tt.limit, escaped, tt.wantEscaped)
			}
			if escaped && iter != tt.wantIter {
				t.Errorf("EscapeTime(%v, %d) iter = %d, want %d", tt.c, tt.limit, iter, tt.wantIter)
			}
		})
	}
}

func TestEscapeTimeJustOutsideCardioid(t *testing.T) {
	// c = 0.26 is just past the cusp of the main cardioid at 0.25: the orbit
	// drifts outward slowly, so it escapes, but only after many iterations.
	iter, escaped := EscapeTime(complex(0.26, 0), 255)
	if !escaped {
		t.Fatal("point just outside the cardioid should escape within 255 iterations")
	}
	if iter <= 5 {
		t.Errorf("escape iter = %d, want a slow escape (> 5)", iter)
	}
}

func TestPixelsCount(t *testing.T) {
	b := PixelBounds{Width: 1000, Height: 750}
	if got := b.Pixels(); got != 750000 {
		t.Errorf("Pixels() = %d, want 750000", got)
	}
}
