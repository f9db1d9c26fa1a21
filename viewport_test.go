package mandelbrot

import (
	"errors"
	"image"
	"math"
	"math/cmplx"
	"testing"
)

func TestViewportSquareMapping(t *testing.T) {
	vp, err := NewViewport(image.Rect(0, 0, 4, 4), 0, 4)
	if err != nil {
		t.Fatal(err)
	}

	if got := vp.Scale(); got != 1 {
		t.Fatalf("expected scale 1, got %g", got)
	}
	if got := vp.PlaneHeight(); got != 4 {
		t.Fatalf("expected plane height 4, got %g", got)
	}
	if got := vp.ToComplex(0, 0); got != complex(-2, 2) {
		t.Errorf("top-left pixel mapped to %v, want (-2+2i)", got)
	}
	if got := vp.ToComplex(3, 3); got != complex(1, -1) {
		t.Errorf("pixel (3,3) mapped to %v, want (1-1i)", got)
	}
}

func TestViewportCenterRoundTrip(t *testing.T) {
	vp, err := NewViewport(image.Rect(0, 0, 10, 6), complex(-0.75, 0.1), 3.5)
	if err != nil {
		t.Fatal(err)
	}

	got := vp.ToComplex(5, 3)
	if cmplx.Abs(got-vp.Center) > 1e-12 {
		t.Errorf("middle pixel mapped to %v, want center %v", got, vp.Center)
	}
}

func TestViewportOrientation(t *testing.T) {
	vp, err := NewViewport(image.Rect(0, 0, 100, 80), complex(-0.5, 0), 3)
	if err != nil {
		t.Fatal(err)
	}

	a := vp.ToComplex(10, 10)
	right := vp.ToComplex(11, 10)
	down := vp.ToComplex(10, 11)

	if d := real(right) - real(a); math.Abs(d-vp.Scale()) > 1e-12 {
		t.Errorf("stepping right moved real by %g, want %g", d, vp.Scale())
	}
	if d := imag(down) - imag(a); math.Abs(d+vp.Scale()) > 1e-12 {
		t.Errorf("stepping down moved imag by %g, want %g", d, -vp.Scale())
	}
}

func TestViewportGlobalCoordinates(t *testing.T) {
	whole, err := NewViewport(image.Rect(0, 0, 4, 4), 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	shifted, err := NewViewport(image.Rect(10, 20, 14, 24), 0, 4)
	if err != nil {
		t.Fatal(err)
	}

	// The shifted viewport addresses the same plane points through its
	// own pixel coordinates.
	if a, b := whole.ToComplex(0, 0), shifted.ToComplex(10, 20); a != b {
		t.Errorf("origin pixels mapped to %v and %v", a, b)
	}
	if a, b := whole.ToComplex(3, 2), shifted.ToComplex(13, 22); a != b {
		t.Errorf("interior pixels mapped to %v and %v", a, b)
	}
}

func TestViewportValidation(t *testing.T) {
	tests := []struct {
		name    string
		bounds  image.Rectangle
		width   float64
		wantErr error
	}{
		{"valid", image.Rect(0, 0, 10, 10), 1, nil},
		{"empty bounds", image.Rectangle{}, 1, ErrImageSize},
		{"zero height", image.Rect(0, 0, 10, 0), 1, ErrImageSize},
		{"zero width", image.Rect(0, 0, 10, 10), 0, ErrWidth},
		{"negative width", image.Rect(0, 0, 10, 10), -2, ErrWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViewport(tt.bounds, 0, tt.width)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewViewport error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestViewportPixelsRowMajor(t *testing.T) {
	vp, err := NewViewport(image.Rect(0, 0, 2, 2), 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	var got []image.Point
	for pt := range vp.Pixels() {
		got = append(got, pt)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d pixels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestViewportPixelsRestart(t *testing.T) {
	vp, err := NewViewport(image.Rect(0, 0, 3, 3), 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Break out early, then range again from the top.
	for pt := range vp.Pixels() {
		if pt.X == 1 {
			break
		}
	}
	for pt := range vp.Pixels() {
		if pt != (image.Point{0, 0}) {
			t.Errorf("second enumeration started at %v, want (0,0)", pt)
		}
		break
	}
}
