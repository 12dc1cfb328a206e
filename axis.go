package chart

import "math"

// PlotOrientation specifies which logical axis maps to which screen
// axis.
type PlotOrientation int

const (
	// OrientationVertical is the default orientation: the domain axis
	// runs horizontally and the range axis vertically.
	OrientationVertical PlotOrientation = iota
	// OrientationHorizontal transposes the plot: the domain axis runs
	// vertically and the range axis horizontally.
	OrientationHorizontal
)

// String returns a readable name for the orientation.
func (o PlotOrientation) String() string {
	if o == OrientationHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// AxisEdge identifies the side of the data area an axis is drawn
// along. The edge determines whether a value maps to a screen x or
// screen y coordinate.
type AxisEdge int

const (
	// EdgeBottom places the axis below the data area.
	EdgeBottom AxisEdge = iota
	// EdgeLeft places the axis to the left of the data area.
	EdgeLeft
	// EdgeTop places the axis above the data area.
	EdgeTop
	// EdgeRight places the axis to the right of the data area.
	EdgeRight
)

// isHorizontal reports whether the edge runs along the top or bottom
// of the data area, i.e. whether values map to screen x coordinates.
func (e AxisEdge) isHorizontal() bool {
	return e == EdgeBottom || e == EdgeTop
}

// ValueAxis maps data values to drawing-surface coordinates. It is the
// renderer's view of an axis; host frameworks supply their own
// implementations, and LinearAxis is provided for standalone use.
type ValueAxis interface {
	// ValueToCoordinate maps a data value to a drawing-surface
	// coordinate along this axis, drawn on the given edge of the data
	// area. It may return NaN to signal that the value is not
	// representable; the renderer drops such points silently.
	ValueToCoordinate(value float64, area Rect, edge AxisEdge) float64

	// LowerBound returns the lower bound of the axis range.
	LowerBound() float64

	// UpperBound returns the upper bound of the axis range.
	UpperBound() float64
}

// LinearAxis is a ValueAxis with a linear mapping from a data range
// onto the data area. Vertical edges account for the flipped screen y
// axis, so larger values plot higher.
type LinearAxis struct {
	lower, upper float64
	inverted     bool
}

// NewLinearAxis creates an axis covering [lower, upper].
func NewLinearAxis(lower, upper float64) *LinearAxis {
	return &LinearAxis{lower: lower, upper: upper}
}

// SetInverted flips the direction of the axis.
func (a *LinearAxis) SetInverted(inverted bool) {
	a.inverted = inverted
}

// LowerBound implements ValueAxis.
func (a *LinearAxis) LowerBound() float64 { return a.lower }

// UpperBound implements ValueAxis.
func (a *LinearAxis) UpperBound() float64 { return a.upper }

// ValueToCoordinate implements ValueAxis. A degenerate range (upper
// not greater than lower) yields NaN for every value.
func (a *LinearAxis) ValueToCoordinate(value float64, area Rect, edge AxisEdge) float64 {
	span := a.upper - a.lower
	if span <= 0 {
		return math.NaN()
	}
	frac := (value - a.lower) / span
	if a.inverted {
		frac = 1 - frac
	}
	if edge.isHorizontal() {
		return area.X + frac*area.W
	}
	// Screen y grows downward; the axis value grows upward.
	return area.MaxY() - frac*area.H
}

// Plot bundles the per-pass collaborators a renderer needs: the data
// area, the two axes with their edges, and the orientation.
type Plot struct {
	Area        Rect
	DomainAxis  ValueAxis
	RangeAxis   ValueAxis
	DomainEdge  AxisEdge
	RangeEdge   AxisEdge
	Orientation PlotOrientation
}

// NewPlot creates a plot over the given data area with the
// conventional axis placement: domain along the bottom, range along
// the left, vertical orientation.
func NewPlot(area Rect, domain, rng ValueAxis) *Plot {
	return &Plot{
		Area:        area,
		DomainAxis:  domain,
		RangeAxis:   rng,
		DomainEdge:  EdgeBottom,
		RangeEdge:   EdgeLeft,
		Orientation: OrientationVertical,
	}
}
