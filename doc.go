// Package mandelbrot renders the Mandelbrot set with escape-time iteration.
//
// The package is built from four small, composable pieces:
//
//   - [Set]: escape-time iteration with optional smooth (renormalized) counts
//   - [Viewport]: affine mapping between image pixels and the complex plane
//   - [Palette]: stability-to-color lookup with wrap-around indexing
//   - [Paint] and friends: render loops that tie the three together
//
// # Example
//
//	set, _ := mandelbrot.New(512, 1000)
//	img := image.NewRGBA(image.Rect(0, 0, 1024, 768))
//	vp, _ := mandelbrot.NewViewport(img.Bounds(), complex(-0.75, 0), 3.5)
//	pal, _ := mandelbrot.PaletteByName("plasma", 256)
//	mandelbrot.Paint(set, vp, pal, true, img)
//
// # Thread Safety
//
// Set, Viewport and Palette values are immutable after construction and
// safe for concurrent use. [PaintParallel] renders a single image from
// many goroutines.
package mandelbrot
