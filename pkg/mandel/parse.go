package mandel

import (
	"strconv"
	"strings"

	apperrors "github.com/mandelband/mandelband/pkg/errors"
)

// ParseBounds parses a "WIDTHxHEIGHT" string (e.g. "1000x750") into
// PixelBounds. Both dimensions must be positive integers.
func ParseBounds(s string) (PixelBounds, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return PixelBounds{}, apperrors.New(apperrors.ErrCodeInvalidBounds, "invalid dimensions %q: expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return PixelBounds{}, apperrors.Wrap(apperrors.ErrCodeInvalidBounds, err, "invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return PixelBounds{}, apperrors.Wrap(apperrors.ErrCodeInvalidBounds, err, "invalid height in %q", s)
	}
	if w <= 0 || h <= 0 {
		return PixelBounds{}, apperrors.New(apperrors.ErrCodeInvalidBounds, "dimensions must be positive, got %dx%d", w, h)
	}
	return PixelBounds{Width: w, Height: h}, nil
}

// ParsePoint parses a "RE,IM" string (e.g. "-1.20,0.35") into a point of the
// complex plane.
func ParsePoint(s string) (complex128, error) {
	res, ims, ok := strings.Cut(s, ",")
	if !ok {
		return 0, apperrors.New(apperrors.ErrCodeInvalidPoint, "invalid point %q: expected RE,IM", s)
	}
	re, err := strconv.ParseFloat(res, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidPoint, err, "invalid real part in %q", s)
	}
	im, err := strconv.ParseFloat(ims, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidPoint, err, "invalid imaginary part in %q", s)
	}
	return complex(re, im), nil
}
