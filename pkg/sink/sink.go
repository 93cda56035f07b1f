// Package sink persists rendered pixel buffers as image files.
//
// The renderer produces a flat, row-major byte buffer with one intensity
// byte per pixel; this package encodes that buffer as a single-channel
// raster (grayscale PNG or binary PGM) and writes artifacts to disk
// atomically.
package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/mandelband/mandelband/pkg/errors"
	"github.com/mandelband/mandelband/pkg/mandel"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatPGM = "pgm"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatPGM: true,
}

// Encode encodes pixels in the named format.
func Encode(format string, pixels []byte, bounds mandel.PixelBounds) ([]byte, error) {
	switch format {
	case FormatPNG:
		return EncodePNG(pixels, bounds)
	case FormatPGM:
		return EncodePGM(pixels, bounds)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format: %s (must be 'png' or 'pgm')", format)
	}
}

// EncodePNG encodes pixels as an 8-bit grayscale PNG. The buffer must hold
// exactly bounds.Width*bounds.Height bytes in row-major order, top row
// first.
func EncodePNG(pixels []byte, bounds mandel.PixelBounds) ([]byte, error) {
	if err := checkBuffer(pixels, bounds); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, bounds.Width, bounds.Height))
	// image.NewGray allocates stride == width, so the raster layouts match.
	copy(img.Pix, pixels)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeEncode, err, "encode png")
	}
	return buf.Bytes(), nil
}

// EncodePGM encodes pixels as a binary PGM (P5) with maximum value 255. The
// payload is the pixel buffer itself, so the format is effectively a raw
// dump with a small header.
func EncodePGM(pixels []byte, bounds mandel.PixelBounds) ([]byte, error) {
	if err := checkBuffer(pixels, bounds); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P5\n%d %d\n255\n", bounds.Width, bounds.Height)
	buf.Write(pixels)
	return buf.Bytes(), nil
}

// WriteFile writes data to path atomically: it writes a uniquely named
// temporary file in the target directory and renames it into place, so a
// failed render never leaves a truncated image behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func checkBuffer(pixels []byte, bounds mandel.PixelBounds) error {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidBounds, "dimensions must be positive, got %dx%d", bounds.Width, bounds.Height)
	}
	if len(pixels) != bounds.Pixels() {
		return apperrors.New(apperrors.ErrCodeInvalidBounds,
			"pixel buffer holds %d bytes, bounds %dx%d require %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Pixels())
	}
	return nil
}
