package chart

// FillType selects the baseline against which the area around a spline
// curve is closed and filled.
type FillType int

const (
	// FillNone disables filling; only the curve is stroked.
	FillNone FillType = iota
	// FillToZero closes the fill region against the zero value on the
	// value axis.
	FillToZero
	// FillToLowerBound closes the fill region against the lower bound
	// of the axis range.
	FillToLowerBound
	// FillToUpperBound closes the fill region against the upper bound
	// of the axis range.
	FillToUpperBound
)

// String returns a readable name for the fill type.
func (t FillType) String() string {
	switch t {
	case FillNone:
		return "none"
	case FillToZero:
		return "to-zero"
	case FillToLowerBound:
		return "to-lower-bound"
	case FillToUpperBound:
		return "to-upper-bound"
	}
	return "unknown"
}

// isValid reports whether t is one of the defined fill types.
func (t FillType) isValid() bool {
	return t >= FillNone && t <= FillToUpperBound
}

// fillOrigin computes the baseline point for a fill. The point
// carries the baseline coordinate for both screen axes: for the
// default orientation its Y is the baseline and for the transposed
// orientation its X is, mirroring how the fill region is closed.
// Must not be called with FillNone.
func fillOrigin(t FillType, plot *Plot) Point {
	var dv, rv float64
	switch t {
	case FillToZero:
		dv, rv = 0, 0
	case FillToLowerBound:
		dv = plot.DomainAxis.LowerBound()
		rv = plot.RangeAxis.LowerBound()
	default: // FillToUpperBound
		dv = plot.DomainAxis.UpperBound()
		rv = plot.RangeAxis.UpperBound()
	}
	dc := plot.DomainAxis.ValueToCoordinate(dv, plot.Area, plot.DomainEdge)
	rc := plot.RangeAxis.ValueToCoordinate(rv, plot.Area, plot.RangeEdge)
	if plot.Orientation == OrientationHorizontal {
		return Pt(rc, dc)
	}
	return Pt(dc, rc)
}
