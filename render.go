package mandelbrot

import (
	"image"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// DefaultTileSize is the edge length of the work units handed to render
// farm workers.
const DefaultTileSize = 64

func renderPreflight(vp Viewport, pal Palette) error {
	if err := vp.validate(); err != nil {
		return err
	}
	if len(pal) == 0 {
		return ErrEmptyPalette
	}
	return nil
}

// Paint renders the viewport into sink one pixel at a time. Stability is
// clamped before palette lookup, so members of the set always take the
// palette's last color.
func Paint(s *Set, vp Viewport, pal Palette, smooth bool, sink PixelSink) error {
	if err := renderPreflight(vp, pal); err != nil {
		return err
	}
	if !vp.Bounds.In(sink.Bounds()) {
		return ErrBoundsMismatch
	}
	for pt := range vp.Pixels() {
		c := vp.ToComplex(pt.X, pt.Y)
		sink.Set(pt.X, pt.Y, pal.At(s.Stability(c, smooth, true)))
	}
	return nil
}

// PaintParallel renders the viewport into img with the given number of
// worker goroutines, handing out rows from a shared channel. Zero or
// negative workers means runtime.NumCPU. The output is identical to
// Paint on the same inputs.
func PaintParallel(s *Set, vp Viewport, pal Palette, smooth bool, img *image.RGBA, workers int) error {
	if err := renderPreflight(vp, pal); err != nil {
		return err
	}
	if !vp.Bounds.In(img.Bounds()) {
		return ErrBoundsMismatch
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int)
	go func() {
		for y := vp.Bounds.Min.Y; y < vp.Bounds.Max.Y; y++ {
			rows <- y
		}
		close(rows)
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := vp.Bounds.Min.X; x < vp.Bounds.Max.X; x++ {
					c := vp.ToComplex(x, y)
					img.SetRGBA(x, y, pal.At(s.Stability(c, smooth, true)))
				}
			}
		}()
	}
	wg.Wait()
	return nil
}

// PaintSuperSampled renders at factor times the target resolution and
// scales down with a Catmull-Rom kernel, smoothing aliased filaments.
// Factor 1 or less renders directly.
func PaintSuperSampled(s *Set, vp Viewport, pal Palette, smooth bool, img *image.RGBA, factor, workers int) error {
	if factor <= 1 {
		return PaintParallel(s, vp, pal, smooth, img, workers)
	}
	if err := renderPreflight(vp, pal); err != nil {
		return err
	}
	if !vp.Bounds.In(img.Bounds()) {
		return ErrBoundsMismatch
	}

	hiBounds := image.Rect(0, 0, vp.Bounds.Dx()*factor, vp.Bounds.Dy()*factor)
	hiView := Viewport{Bounds: hiBounds, Center: vp.Center, Width: vp.Width}
	hi := image.NewRGBA(hiBounds)
	if err := PaintParallel(s, hiView, pal, smooth, hi, workers); err != nil {
		return err
	}
	xdraw.CatmullRom.Scale(img, vp.Bounds, hi, hiBounds, xdraw.Src, nil)
	return nil
}

// RenderTile renders one tile of the viewport into a fresh image. The
// image keeps global coordinates (tile.Min .. tile.Max), ready for
// compositing with draw.Draw.
func RenderTile(s *Set, vp Viewport, pal Palette, smooth bool, tile image.Rectangle) (*image.RGBA, error) {
	if err := renderPreflight(vp, pal); err != nil {
		return nil, err
	}
	if !tile.In(vp.Bounds) {
		return nil, ErrBoundsMismatch
	}
	img := image.NewRGBA(tile)
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			c := vp.ToComplex(x, y)
			img.SetRGBA(x, y, pal.At(s.Stability(c, smooth, true)))
		}
	}
	return img, nil
}

// SplitTiles splits r into tileSize × tileSize tiles. Tiles at the right
// and bottom edges are smaller if r is not divisible. It panics when
// tileSize is not positive.
func SplitTiles(r image.Rectangle, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		panic("tile size must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileSize {
		th := tileSize
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileSize {
			tw := tileSize
			if ox+tw > w {
				tw = w - ox
			}

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
