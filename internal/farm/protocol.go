// Package farm distributes tile rendering over websockets. A Server
// owns the target image and hands out tiles; workers connect, render
// the tiles they are given and stream the pixels back. The protocol is
// three JSON message types: a Hello from the worker, then Job and
// Result pairs until the server closes the connection.
package farm

import (
	"errors"
	"fmt"
	"image"

	"github.com/ivantronics/mandelbrot"
	"github.com/ivantronics/mandelbrot/internal/config"
)

// maxMessageBytes caps websocket messages on both ends. Raw RGBA for a
// tile grows with the tile area, so the default 32 KiB limit is far too
// small.
const maxMessageBytes = 1 << 24

// ErrBadResult indicates a result whose pixel buffer does not match its
// tile dimensions.
var ErrBadResult = errors.New("farm: result pixel buffer does not match tile")

// TileSpec identifies one tile of the target image.
type TileSpec struct {
	X0 int `json:"x0"` // top-left pixel in global image
	Y0 int `json:"y0"`
	W  int `json:"w"` // tile width & height
	H  int `json:"h"`
}

// Rect returns the tile as a rectangle in global image coordinates.
func (t TileSpec) Rect() image.Rectangle {
	return image.Rect(t.X0, t.Y0, t.X0+t.W, t.Y0+t.H)
}

// SpecFromRect converts a rectangle into a TileSpec.
func SpecFromRect(r image.Rectangle) TileSpec {
	return TileSpec{X0: r.Min.X, Y0: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// RenderParams is the wire subset of a render config. Every Job carries
// the full set, so workers hold no per-render state.
type RenderParams struct {
	MaxIterations int     `json:"max_iterations"`
	EscapeRadius  float64 `json:"escape_radius"`
	CenterRe      float64 `json:"center_re"`
	CenterIm      float64 `json:"center_im"`
	Width         float64 `json:"width"`
	ImageWidth    int     `json:"image_width"`
	ImageHeight   int     `json:"image_height"`
	Smooth        bool    `json:"smooth"`
	Palette       string  `json:"palette"`
	PaletteSize   int     `json:"palette_size"`
}

// ParamsFromConfig extracts the wire subset of a render config.
func ParamsFromConfig(cfg *config.Config) RenderParams {
	return RenderParams{
		MaxIterations: cfg.MaxIterations,
		EscapeRadius:  cfg.EscapeRadius,
		CenterRe:      cfg.CenterRe,
		CenterIm:      cfg.CenterIm,
		Width:         cfg.Width,
		ImageWidth:    cfg.ImageWidth,
		ImageHeight:   cfg.ImageHeight,
		Smooth:        cfg.Smooth,
		Palette:       cfg.Palette,
		PaletteSize:   cfg.PaletteSize,
	}
}

// Components builds the set, viewport and palette the params describe.
func (p RenderParams) Components() (*mandelbrot.Set, mandelbrot.Viewport, mandelbrot.Palette, error) {
	set, err := mandelbrot.New(p.MaxIterations, p.EscapeRadius)
	if err != nil {
		return nil, mandelbrot.Viewport{}, nil, err
	}
	bounds := image.Rect(0, 0, p.ImageWidth, p.ImageHeight)
	vp, err := mandelbrot.NewViewport(bounds, complex(p.CenterRe, p.CenterIm), p.Width)
	if err != nil {
		return nil, mandelbrot.Viewport{}, nil, err
	}
	pal, err := mandelbrot.PaletteByName(p.Palette, p.PaletteSize)
	if err != nil {
		return nil, mandelbrot.Viewport{}, nil, err
	}
	return set, vp, pal, nil
}

// Hello is the worker's first message after connecting.
type Hello struct {
	Name  string `json:"name"`
	Procs int    `json:"procs"`
}

// Job asks a worker to render one tile.
type Job struct {
	Seq    int          `json:"seq"`
	Tile   TileSpec     `json:"tile"`
	Params RenderParams `json:"params"`
}

// Result carries a rendered tile's raw RGBA pixels back to the server.
type Result struct {
	Seq  int      `json:"seq"`
	Tile TileSpec `json:"tile"`
	Pix  []byte   `json:"pix"`
}

// Image reassembles the result into an image with global coordinates.
func (r Result) Image() (*image.RGBA, error) {
	want := 4 * r.Tile.W * r.Tile.H
	if len(r.Pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBadResult, len(r.Pix), want)
	}
	return &image.RGBA{
		Pix:    r.Pix,
		Stride: 4 * r.Tile.W,
		Rect:   r.Tile.Rect(),
	}, nil
}

// ResultFromImage packs a rendered tile for the wire.
func ResultFromImage(seq int, img *image.RGBA) Result {
	b := img.Bounds()
	spec := SpecFromRect(b)
	row := 4 * b.Dx()

	if img.Stride == row && img.PixOffset(b.Min.X, b.Min.Y) == 0 {
		return Result{Seq: seq, Tile: spec, Pix: img.Pix}
	}

	// Sub-images carry padding; repack row by row.
	pix := make([]byte, row*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*row:(y+1)*row], img.Pix[off:off+row])
	}
	return Result{Seq: seq, Tile: spec, Pix: pix}
}
