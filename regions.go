package mandelbrot

import "image"

// Region is an axis-aligned window on the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Center returns the midpoint of the region.
func (r Region) Center() complex128 {
	return complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2)
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 {
	return r.Xmax - r.Xmin
}

// Viewport fits the region onto bounds. The region's width is mapped
// exactly; the vertical extent follows the pixel aspect ratio around
// the region's center.
func (r Region) Viewport(bounds image.Rectangle) (Viewport, error) {
	return NewViewport(bounds, r.Center(), r.Width())
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// The whole set, framed as in most textbook plots
	FullSet = Region{
		Xmin: -2.5,
		Xmax: 1.0,
		Ymin: -1.75,
		Ymax: 1.75,
	}

	// Misiurewicz point M(26,2), a spiral that stays crisp under zoom
	Misiurewicz = Region{
		Xmin: -0.7445,
		Xmax: -0.7425,
		Ymin: 0.1304,
		Ymax: 0.1324,
	}

	// Seahorse Valley, dense filaments and repeating seahorse curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley, large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot, small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral, threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon, deep and highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral, self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmark pairs a region with a printable name.
type Landmark struct {
	Name   string
	Region Region
}

// Landmarks lists the built-in regions in display order.
func Landmarks() []Landmark {
	return []Landmark{
		{"full-set", FullSet},
		{"misiurewicz", Misiurewicz},
		{"seahorse-valley", SeahorseValley},
		{"elephant-valley", ElephantValley},
		{"spiral-minibrot", SpiralMinibrot},
		{"triple-spiral", TripleSpiral},
		{"valley-of-the-dragon", ValleyOfTheDragon},
		{"minibrot-in-mini-spiral", MinibrotInMiniSpiral},
	}
}

// LandmarkByName returns the named built-in region.
func LandmarkByName(name string) (Region, bool) {
	for _, l := range Landmarks() {
		if l.Name == name {
			return l.Region, true
		}
	}
	return Region{}, false
}
