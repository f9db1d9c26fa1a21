package mandelbrot

import "errors"

// Configuration errors reported when a renderer component is constructed
// with parameters that cannot produce a meaningful render.
var (
	// ErrIterations indicates a non-positive iteration limit.
	ErrIterations = errors.New("mandelbrot: max iterations must be positive")

	// ErrEscapeRadius indicates an escape radius too small to bound the set.
	ErrEscapeRadius = errors.New("mandelbrot: escape radius must be greater than 1")

	// ErrWidth indicates a non-positive viewport width on the complex plane.
	ErrWidth = errors.New("mandelbrot: viewport width must be positive")

	// ErrImageSize indicates an image with non-positive pixel dimensions.
	ErrImageSize = errors.New("mandelbrot: image dimensions must be positive")

	// ErrEmptyPalette indicates a palette with no colors.
	ErrEmptyPalette = errors.New("mandelbrot: palette must contain at least one color")

	// ErrBoundsMismatch indicates a target image that does not cover the
	// viewport being rendered.
	ErrBoundsMismatch = errors.New("mandelbrot: image bounds do not cover viewport")

	// ErrUnknownPalette indicates a palette name with no registered stops.
	ErrUnknownPalette = errors.New("mandelbrot: unknown palette name")
)
