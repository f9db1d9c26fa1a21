package mandelbrot

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Palette is an ordered color table indexed by stability.
type Palette []color.RGBA

// PaletteIndex maps a stability value onto a palette of the given size.
// The value is scaled by size, capped at the last slot so that full
// stability stays in range, floored, and finally wrapped modulo size.
// Wrapping keeps out-of-range inputs renderable: unclamped smoothed
// stabilities below zero or above one land on a valid slot instead of
// failing. Size must be positive.
func PaletteIndex(stability float64, size int) int {
	n := float64(size)
	idx := math.Floor(math.Min(stability*n, n-1))
	idx = math.Mod(idx, n)
	if idx < 0 {
		idx += n
	}
	return int(idx)
}

// At returns the palette color for a stability value. The palette must
// not be empty.
func (p Palette) At(stability float64) color.RGBA {
	return p[PaletteIndex(stability, len(p))]
}

// Denormalize converts RGB triples with channels in [0, 1] into a
// Palette, truncating each channel to 8 bits. Alpha is opaque.
func Denormalize(colors [][3]float64) Palette {
	pal := make(Palette, len(colors))
	for i, c := range colors {
		pal[i] = color.RGBA{
			R: uint8(c[0] * 255),
			G: uint8(c[1] * 255),
			B: uint8(c[2] * 255),
			A: 255,
		}
	}
	return pal
}

// Gradient builds a palette of the given size by linear interpolation
// between stops. It fails with ErrEmptyPalette when there are no stops
// or size is not positive.
func Gradient(stops []color.RGBA, size int) (Palette, error) {
	if len(stops) == 0 || size <= 0 {
		return nil, ErrEmptyPalette
	}
	pal := make(Palette, size)
	if len(stops) == 1 || size == 1 {
		for i := range pal {
			pal[i] = stops[0]
		}
		return pal, nil
	}
	segments := float64(len(stops) - 1)
	for i := range pal {
		pos := float64(i) / float64(size-1) * segments
		whole, frac := math.Modf(pos)
		j := int(whole)
		if j >= len(stops)-1 {
			j = len(stops) - 2
			frac = 1
		}
		pal[i] = lerpRGBA(stops[j], stops[j+1], frac)
	}
	return pal, nil
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

// Stop lists for the built-in palettes. Plasma follows the well known
// colormap of the same name.
var paletteStops = map[string][]color.RGBA{
	"plasma": {
		{R: 0x0d, G: 0x08, B: 0x87, A: 0xff},
		{R: 0x46, G: 0x03, B: 0x9f, A: 0xff},
		{R: 0x72, G: 0x01, B: 0xa8, A: 0xff},
		{R: 0x9c, G: 0x17, B: 0x9e, A: 0xff},
		{R: 0xbd, G: 0x37, B: 0x86, A: 0xff},
		{R: 0xd8, G: 0x57, B: 0x6b, A: 0xff},
		{R: 0xed, G: 0x79, B: 0x53, A: 0xff},
		{R: 0xfb, G: 0x9f, B: 0x3a, A: 0xff},
		{R: 0xfd, G: 0xca, B: 0x26, A: 0xff},
		{R: 0xf0, G: 0xf9, B: 0x21, A: 0xff},
	},
	"fire": {
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xb4, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0x78, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xe6, B: 0x3c, A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	},
	"ocean": {
		{R: 0x00, G: 0x00, B: 0x28, A: 0xff},
		{R: 0x00, G: 0x50, B: 0xa0, A: 0xff},
		{R: 0x3c, G: 0xb4, B: 0xdc, A: 0xff},
		{R: 0xdc, G: 0xfa, B: 0xff, A: 0xff},
	},
	"gray": {
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	},
}

// PaletteByName builds one of the built-in palettes at the given size.
// It fails with ErrUnknownPalette for names not in PaletteNames.
func PaletteByName(name string, size int) (Palette, error) {
	stops, ok := paletteStops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return Gradient(stops, size)
}

// PaletteNames lists the built-in palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(paletteStops))
	for name := range paletteStops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
