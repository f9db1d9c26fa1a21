package mandelbrot

import (
	"image"
	"image/color"
)

// PixelSink receives rendered pixels. *image.RGBA satisfies it, as does
// any draw.Image.
type PixelSink interface {
	Set(x, y int, c color.Color)
	Bounds() image.Rectangle
}

var _ PixelSink = (*image.RGBA)(nil)
