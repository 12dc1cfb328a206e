package chart

import "reflect"

// GradientTransformer adapts a gradient paint to the geometry it is
// about to fill. The spline renderer applies it to a series' gradient
// fill paint once per series, against the bounding box of the fill
// region, so a single gradient definition stretches correctly over
// fill areas of any size.
//
// A nil transformer leaves gradient paints unmodified.
type GradientTransformer interface {
	// Transform returns a gradient fitted to the given bounds.
	// Implementations must not mutate the input gradient.
	Transform(g *LinearGradientPaint, bounds Rect) *LinearGradientPaint
}

// GradientFit selects how StandardGradientTransformer maps a gradient
// onto the target bounds.
type GradientFit int

const (
	// FitVertical runs the gradient from the top edge to the bottom
	// edge of the bounds.
	FitVertical GradientFit = iota
	// FitHorizontal runs the gradient from the left edge to the right
	// edge of the bounds.
	FitHorizontal
	// FitCenterVertical runs the gradient from the vertical center to
	// the bottom edge.
	FitCenterVertical
	// FitCenterHorizontal runs the gradient from the horizontal center
	// to the right edge.
	FitCenterHorizontal
)

// StandardGradientTransformer fits a linear gradient to the bounding
// box of the region being filled. The zero value fits vertically,
// which suits the usual "fade toward the baseline" series fill.
type StandardGradientTransformer struct {
	Fit GradientFit
}

// Transform implements GradientTransformer.
func (t StandardGradientTransformer) Transform(g *LinearGradientPaint, bounds Rect) *LinearGradientPaint {
	if g == nil {
		return nil
	}
	var start, end Point
	switch t.Fit {
	case FitHorizontal:
		start = Pt(bounds.X, bounds.CenterY())
		end = Pt(bounds.MaxX(), bounds.CenterY())
	case FitCenterVertical:
		start = Pt(bounds.CenterX(), bounds.CenterY())
		end = Pt(bounds.CenterX(), bounds.MaxY())
	case FitCenterHorizontal:
		start = Pt(bounds.CenterX(), bounds.CenterY())
		end = Pt(bounds.MaxX(), bounds.CenterY())
	default: // FitVertical
		start = Pt(bounds.CenterX(), bounds.Y)
		end = Pt(bounds.CenterX(), bounds.MaxY())
	}
	return g.WithEndpoints(start, end)
}

// transformersEqual compares two transformers for renderer equality.
// Implementations with comparable dynamic types (such as
// StandardGradientTransformer) compare by value; transformers carrying
// non-comparable state are never considered equal.
func transformersEqual(a, b GradientTransformer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
