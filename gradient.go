package chart

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientPaint represents a linear color transition between two
// points. It implements the Paint interface and supports multiple
// color stops and configurable extend modes.
//
// Series fills typically use a vertical gradient fitted to the fill
// region by a GradientTransformer:
//
//	gradient := chart.NewLinearGradientPaint(0, 0, 0, 1).
//	    AddColorStop(0, chart.Blue).
//	    AddColorStop(1, chart.Blue.WithAlpha(0))
//	r.SetSeriesFillPaint(0, gradient)
type LinearGradientPaint struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How gradient extends beyond bounds
}

// NewLinearGradientPaint creates a new linear gradient from (x0, y0)
// to (x1, y1).
func NewLinearGradientPaint(x0, y0, x1, y1 float64) *LinearGradientPaint {
	return &LinearGradientPaint{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Stops:  nil,
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradientPaint) AddColorStop(offset float64, c RGBA) *LinearGradientPaint {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *LinearGradientPaint) SetExtend(mode ExtendMode) *LinearGradientPaint {
	g.Extend = mode
	return g
}

// WithEndpoints returns a copy of the gradient with new start and end
// points. The stops and extend mode are shared with the receiver.
func (g *LinearGradientPaint) WithEndpoints(start, end Point) *LinearGradientPaint {
	return &LinearGradientPaint{
		Start:  start,
		End:    end,
		Stops:  g.Stops,
		Extend: g.Extend,
	}
}

// paintMarker implements the sealed Paint interface.
func (*LinearGradientPaint) paintMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientPaint) ColorAt(x, y float64) RGBA {
	// Handle zero-length gradient (start == end)
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// Equal reports whether two gradients have the same endpoints, stops
// and extend mode. Used by SplineRenderer.Equals.
func (g *LinearGradientPaint) Equal(other *LinearGradientPaint) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if g.Start != other.Start || g.End != other.End || g.Extend != other.Extend {
		return false
	}
	if len(g.Stops) != len(other.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != other.Stops[i] {
			return false
		}
	}
	return true
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}

// sortStops returns the color stops sorted by offset.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	// Create a copy to avoid modifying the original
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	// Edge case: no stops
	if len(stops) == 0 {
		return Transparent
	}

	// Edge case: single stop
	if len(stops) == 1 {
		return stops[0].Color
	}

	// Sort stops if needed (callers should pre-sort)
	sorted := sortStops(stops)

	// Apply extend mode to normalize t
	t = applyExtendMode(t, mode)

	// Find the two stops to interpolate between
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	// Handle edge cases after extend mode
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	// Interpolate between stops[idx-1] and stops[idx]
	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)

	return stop1.Color.Lerp(stop2.Color, localT)
}
