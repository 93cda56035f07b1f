package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelband/mandelband/pkg/config"
	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
	"github.com/mandelband/mandelband/pkg/pipeline"
	"github.com/mandelband/mandelband/pkg/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	size       string // pixel dimensions as WIDTHxHEIGHT
	upperLeft  string // upper-left viewport corner as RE,IM
	lowerRight string // lower-right viewport corner as RE,IM
	region     string // viewport preset slug (alternative to explicit corners)
	workers    int    // parallel band count (0 = config default)
	formats    string // output formats, comma-separated
	noCache    bool   // disable the artifact cache entirely
	refresh    bool   // ignore cached artifacts, re-render
}

// renderCommand creates the render command.
//
// Defaults when flags are omitted:
//   - size: 1000x750
//   - viewport: the "overview" preset
//   - workers: from config (8 unless configured)
//   - format: inferred from the output extension, else from config
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a region of the Mandelbrot set to an image file",
		Long: `Render a region of the Mandelbrot set as a grayscale image.

The viewport is given either as explicit corner points:

  mandelband render mandel.png --size 1000x750 --upper-left -1.20,0.35 --lower-right -1,0.20

or as a named preset (see 'mandelband regions'):

  mandelband render seahorse.png --region seahorse-valley`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.size, "size", "s", "1000x750", "output dimensions as WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&opts.upperLeft, "upper-left", "u", "", "upper-left viewport corner as RE,IM")
	cmd.Flags().StringVarP(&opts.lowerRight, "lower-right", "l", "", "lower-right viewport corner as RE,IM")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "viewport preset slug (see 'mandelband regions')")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of parallel render bands (default from config)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png, pgm (comma-separated; default inferred from FILE)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")

	return cmd
}

// runRender resolves flags and config into pipeline options, executes the
// pipeline, and writes the resulting artifacts.
func (c *CLI) runRender(ctx context.Context, output string, opts *renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	bounds, err := mandel.ParseBounds(opts.size)
	if err != nil {
		return err
	}

	viewport, regionName, err := resolveViewport(cfg, opts)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers == 0 {
		workers = cfg.Workers
	}

	formats := resolveFormats(opts.formats, output, cfg.Format)

	pipelineOpts := pipeline.Options{
		Bounds:   bounds,
		Viewport: viewport,
		Workers:  workers,
		Formats:  formats,
		Refresh:  opts.refresh,
	}

	if regionName != "" {
		c.Logger.Debug("resolved region preset", "region", regionName)
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %dx%d...", bounds.Width, bounds.Height))
	spinner.Start()
	result, err := runner.Execute(ctx, pipelineOpts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, format := range formats {
		path := outputPath(output, format, len(formats) > 1)
		if err := sink.WriteFile(path, result.Artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printRenderStats(bounds, workers, !result.Rendered())
	prog.done(fmt.Sprintf("Wrote %d artifact(s)", len(formats)))
	return nil
}

// resolveViewport determines the viewport from either a preset slug or
// explicit corner flags. Giving both, or only one corner, is an error.
func resolveViewport(cfg config.Config, opts *renderOpts) (mandel.Viewport, string, error) {
	hasCorners := opts.upperLeft != "" || opts.lowerRight != ""

	if opts.region != "" {
		if hasCorners {
			return mandel.Viewport{}, "", apperrors.New(apperrors.ErrCodeInvalidInput,
				"--region cannot be combined with explicit corner flags")
		}
		r, ok := cfg.Region(opts.region)
		if !ok {
			return mandel.Viewport{}, "", apperrors.New(apperrors.ErrCodeRegionNotFound,
				"unknown region %q (see 'mandelband regions')", opts.region)
		}
		return r.Viewport, r.Slug, nil
	}

	if !hasCorners {
		r, _ := cfg.Region("overview")
		return r.Viewport, r.Slug, nil
	}

	if opts.upperLeft == "" || opts.lowerRight == "" {
		return mandel.Viewport{}, "", apperrors.New(apperrors.ErrCodeInvalidInput,
			"both --upper-left and --lower-right are required")
	}

	ul, err := mandel.ParsePoint(opts.upperLeft)
	if err != nil {
		return mandel.Viewport{}, "", fmt.Errorf("upper-left corner: %w", err)
	}
	lr, err := mandel.ParsePoint(opts.lowerRight)
	if err != nil {
		return mandel.Viewport{}, "", fmt.Errorf("lower-right corner: %w", err)
	}
	return mandel.Viewport{UpperLeft: ul, LowerRight: lr}, "", nil
}

// resolveFormats picks the output formats: the --format flag wins, then the
// output file extension, then the configured default.
func resolveFormats(flag, output, configDefault string) []string {
	if flag != "" {
		return strings.Split(flag, ",")
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); sink.ValidFormats[ext] {
		return []string{ext}
	}
	return []string{configDefault}
}

// outputPath derives the file path for one artifact. With a single format
// the output argument is used as-is (adding the format extension only if it
// has none); with multiple formats each artifact gets the format's
// extension on the shared base path.
func outputPath(output, format string, multi bool) string {
	ext := filepath.Ext(output)
	if !multi {
		if ext != "" {
			return output
		}
		return output + "." + format
	}
	return strings.TrimSuffix(output, ext) + "." + format
}
