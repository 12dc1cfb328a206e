package chart

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDegenerateKnots is returned when a knot sequence cannot be
// splined: fewer than three knots, or x coordinates that are not
// strictly increasing (a repeated x drives an interval width to zero
// and the interpolant has no solution).
var ErrDegenerateKnots = errors.New("chart: degenerate knot sequence")

// NaturalSpline is a natural cubic spline through a sequence of knots:
// a piecewise-cubic interpolant with continuous first and second
// derivatives whose second derivative vanishes at both endpoints (the
// "free" boundary condition).
//
// Fit with FitNatural, then either query individual values with Eval
// or produce a polyline approximation with Sample.
type NaturalSpline struct {
	xs []float64 // knot x coordinates, strictly increasing
	ys []float64 // knot values
	h  []float64 // interval widths, h[i] = xs[i] - xs[i-1] for i >= 1
	m  []float64 // second-derivative coefficients, m[0] = m[n-1] = 0
}

// FitNatural fits a natural cubic spline through the given knots,
// taken in order. At least three knots are required and their x
// coordinates must be strictly increasing; otherwise
// ErrDegenerateKnots is returned. Callers with exactly two points
// should draw a straight segment instead.
func FitNatural(knots []Point) (*NaturalSpline, error) {
	np := len(knots)
	if np < 3 {
		return nil, fmt.Errorf("%w: need at least 3 knots, have %d", ErrDegenerateKnots, np)
	}

	s := &NaturalSpline{
		xs: make([]float64, np),
		ys: make([]float64, np),
		h:  make([]float64, np),
		m:  make([]float64, np),
	}
	for i, p := range knots {
		s.xs[i] = p.X
		s.ys[i] = p.Y
	}

	for i := 1; i < np; i++ {
		s.h[i] = s.xs[i] - s.xs[i-1]
		if s.h[i] <= 0 {
			return nil, fmt.Errorf("%w: knot x values not strictly increasing at index %d", ErrDegenerateKnots, i)
		}
	}

	// Build the tridiagonal system for the interior second-derivative
	// coefficients. The natural boundary pins m[0] = m[np-1] = 0, so
	// only np-2 unknowns remain.
	n := np - 2
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)
	for i := 1; i <= n; i++ {
		diag[i-1] = (s.h[i] + s.h[i+1]) / 3
		sup[i-1] = s.h[i+1] / 6
		sub[i-1] = s.h[i] / 6
		rhs[i-1] = (s.ys[i+1]-s.ys[i])/s.h[i+1] - (s.ys[i]-s.ys[i-1])/s.h[i]
	}

	// The system is strictly diagonally dominant for positive interval
	// widths, so a singular solve here means broken invariants rather
	// than bad user input.
	if err := SolveTridiagonal(sub, diag, sup, rhs, n); err != nil {
		return nil, err
	}
	copy(s.m[1:np-1], rhs)
	s.m[0] = 0
	s.m[np-1] = 0
	return s, nil
}

// Knots returns the number of knots the spline interpolates.
func (s *NaturalSpline) Knots() int {
	return len(s.xs)
}

// evalInterval evaluates the spline on interval i (between knots i-1
// and i) at offset t1 from the left knot, 0 <= t1 <= h[i].
func (s *NaturalSpline) evalInterval(i int, t1 float64) float64 {
	t2 := s.h[i] - t1
	return ((-s.m[i-1]/6*(t2+s.h[i])*t1+s.ys[i-1])*t2 +
		(-s.m[i]/6*(t1+s.h[i])*t2+s.ys[i])*t1) / s.h[i]
}

// Eval returns the spline value at x. Values outside the knot range
// are clamped to the endpoint values.
func (s *NaturalSpline) Eval(x float64) float64 {
	n := len(s.xs)
	if x <= s.xs[0] {
		return s.ys[0]
	}
	if x >= s.xs[n-1] {
		return s.ys[n-1]
	}
	// Index of the first knot >= x; x lies on interval i.
	i := sort.SearchFloat64s(s.xs, x)
	return s.evalInterval(i, x-s.xs[i-1])
}

// Sample walks the spline left to right and emits the polyline
// approximation vertices: for each of the len-1 inter-knot intervals
// it emits exactly precision points, the last of which is the interval's
// right knot. The left endpoint of the curve (the first knot) is not
// emitted; callers typically MoveTo it first. precision must be > 0.
func (s *NaturalSpline) Sample(precision int, emit func(Point)) {
	for i := 1; i < len(s.xs); i++ {
		for j := 1; j <= precision; j++ {
			t1 := s.h[i] * float64(j) / float64(precision)
			y := s.evalInterval(i, t1)
			emit(Pt(s.xs[i-1]+t1, y))
		}
	}
}

// SampleInto appends the polyline approximation to a path as LineTo
// segments. The caller is responsible for the initial MoveTo to the
// first knot.
func (s *NaturalSpline) SampleInto(path *Path, precision int) {
	s.Sample(precision, func(p Point) {
		path.LineTo(p.X, p.Y)
	})
}
