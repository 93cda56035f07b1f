// Package pkg provides the core libraries for mandelband, a parallel
// Mandelbrot-set renderer.
//
// # Overview
//
// Mandelband maps a rectangle of the complex plane onto a pixel raster,
// runs the escape-time iteration for every pixel, and writes the result as
// a grayscale image. The pkg directory is organized into three main areas:
//
//  1. Domain logic - set membership math and band rendering
//  2. Infrastructure - caching, encoding, configuration
//  3. Orchestration - the render → encode → cache pipeline
//
// # Architecture
//
// The typical data flow:
//
//	CLI flags / config file
//	         ↓
//	    [mandel] package (coordinate mapping + escape time)
//	         ↓
//	    [render] package (parallel band rendering)
//	         ↓
//	    [sink] package (PNG/PGM encoding, file output)
//
// # Quick Start
//
// Render a grayscale image of the full set:
//
//	import (
//	    "github.com/mandelband/mandelband/pkg/mandel"
//	    "github.com/mandelband/mandelband/pkg/render"
//	    "github.com/mandelband/mandelband/pkg/sink"
//	)
//
//	bounds := mandel.PixelBounds{Width: 1000, Height: 750}
//	vp := mandel.Viewport{
//	    UpperLeft:  complex(-2.5, 1.25),
//	    LowerRight: complex(1, -1.25),
//	}
//
//	pixels := make([]byte, bounds.Pixels())
//	if err := render.Render(pixels, bounds, vp, render.Options{}); err != nil {
//	    return err
//	}
//
//	data, err := sink.Encode(sink.FormatPNG, pixels, bounds)
//	if err != nil {
//	    return err
//	}
//	return sink.WriteFile("mandel.png", data)
//
// # Main Packages
//
//   - [mandel]: pixel-to-point mapping, escape-time evaluation, input
//     parsing, and the built-in viewport presets
//   - [render]: splits the raster into horizontal bands and renders them
//     concurrently
//   - [sink]: grayscale PNG and PGM encoders plus atomic file writes
//   - [pipeline]: orchestrates render, encode, and artifact caching
//   - [cache]: content-addressed file cache for encoded artifacts
//   - [config]: optional TOML configuration with user viewport presets
//   - [errors]: structured error codes shared across the CLI
//   - [observability]: hook points for render and cache instrumentation
package pkg
