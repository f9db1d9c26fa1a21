package mandelbrot

import (
	"image"
	"iter"
	"math"
)

// Viewport maps the pixel grid of an image onto a rectangle of the
// complex plane. Center is the plane point under the middle of the
// image and Width the plane distance spanned by the image's width;
// the plane height follows from the pixel aspect ratio. Rows run
// toward negative imaginary values, so the image appears with the
// positive imaginary axis pointing up.
type Viewport struct {
	Bounds image.Rectangle
	Center complex128
	Width  float64
}

// NewViewport returns a Viewport over bounds. It fails with
// ErrImageSize or ErrWidth when the mapping would be degenerate.
func NewViewport(bounds image.Rectangle, center complex128, width float64) (Viewport, error) {
	v := Viewport{Bounds: bounds, Center: center, Width: width}
	if err := v.validate(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

func (v Viewport) validate() error {
	if v.Bounds.Dx() <= 0 || v.Bounds.Dy() <= 0 {
		return ErrImageSize
	}
	if v.Width <= 0 || math.IsNaN(v.Width) {
		return ErrWidth
	}
	return nil
}

// Scale is the plane distance covered by one pixel.
func (v Viewport) Scale() float64 {
	return v.Width / float64(v.Bounds.Dx())
}

// PlaneHeight is the plane distance spanned by the image's height.
func (v Viewport) PlaneHeight() float64 {
	return v.Scale() * float64(v.Bounds.Dy())
}

// Offset is the plane point under the top-left pixel.
func (v Viewport) Offset() complex128 {
	return v.Center + complex(-v.Width, v.PlaneHeight())/2
}

// ToComplex returns the plane point under pixel (x, y). Coordinates are
// global, so tiles cut from a larger image address the shared viewport
// without translation.
func (v Viewport) ToComplex(x, y int) complex128 {
	px := float64(x - v.Bounds.Min.X)
	py := float64(y - v.Bounds.Min.Y)
	return complex(px, -py)*complex(v.Scale(), 0) + v.Offset()
}

// Pixels enumerates the viewport's pixel grid in row-major order.
func (v Viewport) Pixels() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for y := v.Bounds.Min.Y; y < v.Bounds.Max.Y; y++ {
			for x := v.Bounds.Min.X; x < v.Bounds.Max.X; x++ {
				if !yield(image.Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
