package mandelbrot

import (
	"math"
	"math/cmplx"
)

// DefaultEscapeRadius is the classic bailout of 2, the smallest radius
// that bounds every orbit of the set. Larger radii reduce banding in
// smoothed counts.
const DefaultEscapeRadius = 2.0

// Set iterates z = z*z + c under a fixed iteration budget and escape
// radius. The zero value is unusable; construct with New. A Set is
// immutable and safe for concurrent use.
type Set struct {
	maxIterations int
	escapeRadius  float64
}

// New returns a Set with the given iteration budget and escape radius.
// It fails with ErrIterations or ErrEscapeRadius when the parameters
// cannot produce a meaningful render.
func New(maxIterations int, escapeRadius float64) (*Set, error) {
	if maxIterations <= 0 {
		return nil, ErrIterations
	}
	if escapeRadius <= 1 {
		return nil, ErrEscapeRadius
	}
	return &Set{maxIterations: maxIterations, escapeRadius: escapeRadius}, nil
}

// MaxIterations returns the iteration budget.
func (s *Set) MaxIterations() int { return s.maxIterations }

// EscapeRadius returns the escape radius.
func (s *Set) EscapeRadius() float64 { return s.escapeRadius }

// EscapeCount iterates c and returns the number of iterations the orbit
// stayed within the escape radius, or the full budget when it never left.
// With smooth set, the integer count is replaced by the renormalized
// fractional count, which may dip below zero or exceed the budget near
// the extremes.
func (s *Set) EscapeCount(c complex128, smooth bool) float64 {
	r2 := s.escapeRadius * s.escapeRadius
	z := complex(0, 0)
	for i := range s.maxIterations {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > r2 {
			if smooth {
				// Renormalized iteration count
				return float64(i) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Log(2)
			}
			return float64(i)
		}
	}
	return float64(s.maxIterations)
}

// Stability is the escape count scaled to the iteration budget: 0 means
// immediate escape, 1 means the point never escaped. With clamp set the
// value is forced into [0, 1], which smoothed counts can otherwise leave.
func (s *Set) Stability(c complex128, smooth, clamp bool) float64 {
	value := s.EscapeCount(c, smooth) / float64(s.maxIterations)
	if clamp {
		value = math.Max(0, math.Min(value, 1))
	}
	return value
}

// Contains reports whether c stayed bounded for the whole iteration
// budget. Membership is exact: only stability 1 counts.
func (s *Set) Contains(c complex128) bool {
	return s.Stability(c, false, true) == 1
}
