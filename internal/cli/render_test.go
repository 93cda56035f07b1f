package cli

import (
	"testing"

	"github.com/mandelband/mandelband/pkg/config"
	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
)

func TestResolveViewportDefaults(t *testing.T) {
	cfg := config.Default()

	vp, slug, err := resolveViewport(cfg, &renderOpts{})
	if err != nil {
		t.Fatalf("resolveViewport() error = %v", err)
	}
	if slug != "overview" {
		t.Errorf("slug = %q, want overview", slug)
	}

	want, _ := mandel.LookupRegion("overview")
	if vp != want.Viewport {
		t.Errorf("viewport = %v, want %v", vp, want.Viewport)
	}
}

func TestResolveViewportExplicitCorners(t *testing.T) {
	cfg := config.Default()
	opts := &renderOpts{upperLeft: "-1.20,0.35", lowerRight: "-1,0.20"}

	vp, slug, err := resolveViewport(cfg, opts)
	if err != nil {
		t.Fatalf("resolveViewport() error = %v", err)
	}
	if slug != "" {
		t.Errorf("slug = %q, want empty for explicit corners", slug)
	}
	if vp.UpperLeft != complex(-1.20, 0.35) || vp.LowerRight != complex(-1, 0.20) {
		t.Errorf("unexpected viewport %v", vp)
	}
}

func TestResolveViewportErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     renderOpts
		wantCode apperrors.Code
	}{
		{
			name:     "region combined with corners",
			opts:     renderOpts{region: "overview", upperLeft: "-1,1"},
			wantCode: apperrors.ErrCodeInvalidInput,
		},
		{
			name:     "unknown region",
			opts:     renderOpts{region: "nowhere"},
			wantCode: apperrors.ErrCodeRegionNotFound,
		},
		{
			name:     "missing lower-right",
			opts:     renderOpts{upperLeft: "-1,1"},
			wantCode: apperrors.ErrCodeInvalidInput,
		},
		{
			name:     "missing upper-left",
			opts:     renderOpts{lowerRight: "1,-1"},
			wantCode: apperrors.ErrCodeInvalidInput,
		},
		{
			name:     "malformed corner",
			opts:     renderOpts{upperLeft: "-1;1", lowerRight: "1,-1"},
			wantCode: apperrors.ErrCodeInvalidPoint,
		},
	}

	cfg := config.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolveViewport(cfg, &tt.opts)
			if err == nil {
				t.Fatal("resolveViewport() expected error")
			}
			if !apperrors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", apperrors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestResolveFormats(t *testing.T) {
	tests := []struct {
		name          string
		flag          string
		output        string
		configDefault string
		want          []string
	}{
		{"flag wins", "pgm", "out.png", "png", []string{"pgm"}},
		{"multiple flag formats", "png,pgm", "out", "png", []string{"png", "pgm"}},
		{"inferred from extension", "", "fractal.pgm", "png", []string{"pgm"}},
		{"unknown extension falls back", "", "fractal.webp", "png", []string{"png"}},
		{"no extension falls back", "", "fractal", "pgm", []string{"pgm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveFormats(tt.flag, tt.output, tt.configDefault)
			if len(got) != len(tt.want) {
				t.Fatalf("resolveFormats() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("resolveFormats() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		multi  bool
		want   string
	}{
		{"single with extension", "out.png", "png", false, "out.png"},
		{"single without extension", "out", "png", false, "out.png"},
		{"single keeps mismatched extension", "out.img", "png", false, "out.img"},
		{"multi replaces extension", "out.png", "pgm", true, "out.pgm"},
		{"multi without extension", "out", "png", true, "out.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.format, tt.multi); got != tt.want {
				t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.output, tt.format, tt.multi, got, tt.want)
			}
		})
	}
}
