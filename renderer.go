package chart

import (
	"errors"
	"fmt"
)

// DefaultPrecision is the default number of line segments used to
// approximate the spline between two data points.
const DefaultPrecision = 5

var (
	// ErrPrecision is returned when a precision of zero or less is
	// configured.
	ErrPrecision = errors.New("chart: precision must be > 0")

	// ErrFillType is returned when an undefined fill type is
	// configured.
	ErrFillType = errors.New("chart: undefined fill type")

	// ErrStrokeWidth is returned when a stroke width of zero or less
	// is configured.
	ErrStrokeWidth = errors.New("chart: stroke width must be > 0")
)

// ChangeListener is notified after a renderer setting changes.
// Host frameworks use this to trigger a redraw.
type ChangeListener func(*SplineRenderer)

// Option configures a SplineRenderer at construction time.
type Option func(*SplineRenderer) error

// WithPrecision sets the number of line segments between data points.
func WithPrecision(p int) Option {
	return func(r *SplineRenderer) error {
		if p <= 0 {
			return fmt.Errorf("%w, have %d", ErrPrecision, p)
		}
		r.precision = p
		return nil
	}
}

// WithFillType sets the fill type.
func WithFillType(t FillType) Option {
	return func(r *SplineRenderer) error {
		if !t.isValid() {
			return fmt.Errorf("%w: %d", ErrFillType, t)
		}
		r.fillType = t
		return nil
	}
}

// WithGradientTransformer sets the gradient transformer. A nil
// transformer disables gradient adaptation.
func WithGradientTransformer(t GradientTransformer) Option {
	return func(r *SplineRenderer) error {
		r.gradientTransformer = t
		return nil
	}
}

// SplineRenderer connects the points of an XY series with a natural
// cubic spline and optionally fills the area between the curve and a
// baseline. It assembles geometry only; stroking and filling happen on
// the Surface it is handed.
//
// A renderer holds configuration and per-series paints. The mutable
// per-pass accumulation lives in SplineState, so one renderer can
// serve many passes as long as each pass owns its own state.
type SplineRenderer struct {
	precision           int
	fillType            FillType
	gradientTransformer GradientTransformer
	strokeWidth         float64

	seriesPaints     map[int]Paint
	seriesFillPaints map[int]Paint

	listeners []ChangeListener
}

// New creates a SplineRenderer with precision DefaultPrecision, no
// fill, and a standard vertical gradient transformer, then applies the
// given options. An invalid option (such as a non-positive precision)
// returns an error and no renderer.
func New(opts ...Option) (*SplineRenderer, error) {
	r := &SplineRenderer{
		precision:           DefaultPrecision,
		fillType:            FillNone,
		gradientTransformer: StandardGradientTransformer{},
		strokeWidth:         1.0,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Precision returns the number of line segments used to approximate
// the spline curve between data points.
func (r *SplineRenderer) Precision() int {
	return r.precision
}

// SetPrecision sets the resolution of splines and notifies all
// registered change listeners. Values of zero or less are rejected
// with ErrPrecision and leave the renderer unchanged.
func (r *SplineRenderer) SetPrecision(p int) error {
	if p <= 0 {
		return fmt.Errorf("%w, have %d", ErrPrecision, p)
	}
	r.precision = p
	r.fireChange()
	return nil
}

// FillType returns the type of fill drawn beneath the curve.
func (r *SplineRenderer) FillType() FillType {
	return r.fillType
}

// SetFillType sets the fill type and notifies all registered change
// listeners. Undefined values are rejected with ErrFillType and leave
// the renderer unchanged.
func (r *SplineRenderer) SetFillType(t FillType) error {
	if !t.isValid() {
		return fmt.Errorf("%w: %d", ErrFillType, t)
	}
	r.fillType = t
	r.fireChange()
	return nil
}

// GradientTransformer returns the gradient transformer, which may be
// nil.
func (r *SplineRenderer) GradientTransformer() GradientTransformer {
	return r.gradientTransformer
}

// SetGradientTransformer sets the gradient transformer and notifies
// all registered change listeners. A nil transformer is permitted and
// disables gradient adaptation.
func (r *SplineRenderer) SetGradientTransformer(t GradientTransformer) {
	r.gradientTransformer = t
	r.fireChange()
}

// StrokeWidth returns the width used to stroke series outlines.
func (r *SplineRenderer) StrokeWidth() float64 {
	return r.strokeWidth
}

// SetStrokeWidth sets the outline stroke width and notifies all
// registered change listeners. Values of zero or less are rejected
// with ErrStrokeWidth and leave the renderer unchanged.
func (r *SplineRenderer) SetStrokeWidth(w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w, have %g", ErrStrokeWidth, w)
	}
	r.strokeWidth = w
	r.fireChange()
	return nil
}

// SetSeriesPaint sets the paint used to stroke a series outline and
// notifies all registered change listeners.
func (r *SplineRenderer) SetSeriesPaint(series int, p Paint) {
	if r.seriesPaints == nil {
		r.seriesPaints = make(map[int]Paint)
	}
	r.seriesPaints[series] = p
	r.fireChange()
}

// SeriesPaint returns the paint used to stroke a series outline,
// falling back to a default palette color.
func (r *SplineRenderer) SeriesPaint(series int) Paint {
	if p, ok := r.seriesPaints[series]; ok {
		return p
	}
	return Solid(paletteColor(series))
}

// SetSeriesFillPaint sets the paint used to fill a series' area and
// notifies all registered change listeners.
func (r *SplineRenderer) SetSeriesFillPaint(series int, p Paint) {
	if r.seriesFillPaints == nil {
		r.seriesFillPaints = make(map[int]Paint)
	}
	r.seriesFillPaints[series] = p
	r.fireChange()
}

// SeriesFillPaint returns the paint used to fill a series' area,
// falling back to the series paint at half opacity.
func (r *SplineRenderer) SeriesFillPaint(series int) Paint {
	if p, ok := r.seriesFillPaints[series]; ok {
		return p
	}
	return Solid(paletteColor(series).WithAlpha(0.5))
}

// AddChangeListener registers a listener notified after every setting
// change.
func (r *SplineRenderer) AddChangeListener(l ChangeListener) {
	r.listeners = append(r.listeners, l)
}

// fireChange notifies all registered change listeners.
func (r *SplineRenderer) fireChange() {
	for _, l := range r.listeners {
		l(r)
	}
}

// Equals reports whether two renderers have the same configuration:
// precision, fill type, stroke width and gradient transformer.
// Listeners and per-series paints are presentation state and do not
// take part in equality.
func (r *SplineRenderer) Equals(other *SplineRenderer) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.precision == other.precision &&
		r.fillType == other.fillType &&
		r.strokeWidth == other.strokeWidth &&
		transformersEqual(r.gradientTransformer, other.gradientTransformer)
}

// SplineState is the per-pass accumulation state: the collected points
// of the series currently being rendered and the outline and fill
// paths under construction. It is reset, not reallocated, between
// series.
//
// A state must not be shared across concurrently rendered passes; give
// each pass its own.
type SplineState struct {
	points   []Point
	outline  *Path
	fillArea *Path
}

// NewSplineState creates an empty accumulation state.
func NewSplineState() *SplineState {
	return &SplineState{
		outline:  NewPath(),
		fillArea: NewPath(),
	}
}

// Points returns the points collected so far for the current series.
func (s *SplineState) Points() []Point {
	return s.points
}

// Reset clears the state for the next series, retaining allocated
// storage.
func (s *SplineState) Reset() {
	s.points = s.points[:0]
	s.outline.Clear()
	s.fillArea.Clear()
}

// contains reports whether the state already holds a point with the
// same coordinates. The membership scan over the whole series mirrors
// the established collection behavior: a mapped point equal to any
// earlier point is dropped, not just an immediate repeat.
func (s *SplineState) contains(p Point) bool {
	for _, q := range s.points {
		if q == p {
			return true
		}
	}
	return false
}

// DrawItem processes one data item of a series. Items must be
// delivered in index order, one series at a time. Each item's value is
// mapped through the plot's axes and collected; on the final item of
// the series the accumulated points are flushed: the outline (spline
// or straight line) is stroked on the surface and, if a fill type is
// configured, the fill region is painted first.
//
// Points that map to non-finite coordinates are dropped silently.
func (r *SplineRenderer) DrawItem(state *SplineState, surface Surface, plot *Plot, dataset XYDataset, series, item int) {
	x := dataset.X(series, item)
	y := dataset.Y(series, item)
	tx := plot.DomainAxis.ValueToCoordinate(x, plot.Area, plot.DomainEdge)
	ty := plot.RangeAxis.ValueToCoordinate(y, plot.Area, plot.RangeEdge)

	if isFinite(tx) && isFinite(ty) {
		p := Pt(tx, ty)
		if plot.Orientation == OrientationHorizontal {
			p = Pt(ty, tx)
		}
		if !state.contains(p) {
			state.points = append(state.points, p)
		}
	} else {
		Logger().Debug("dropped non-finite point",
			"series", series, "item", item, "x", tx, "y", ty)
	}

	if item == dataset.ItemCount(series)-1 {
		r.flush(state, surface, plot, series)
	}
}

// flush builds the outline and fill geometry from the accumulated
// points, hands both to the surface, and resets the state for the next
// series. With fewer than two usable points nothing is drawn.
func (r *SplineRenderer) flush(state *SplineState, surface Surface, plot *Plot, series int) {
	defer state.Reset()

	if len(state.points) < 2 {
		return
	}

	filling := r.fillType != FillNone
	var origin Point
	if filling {
		origin = fillOrigin(r.fillType, plot)
	}

	first := state.points[0]
	last := state.points[len(state.points)-1]
	transposed := plot.Orientation == OrientationHorizontal

	state.outline.MoveTo(first.X, first.Y)
	if filling {
		// Open the fill region at the first knot's projection onto
		// the baseline.
		if transposed {
			state.fillArea.MoveTo(origin.X, first.Y)
		} else {
			state.fillArea.MoveTo(first.X, origin.Y)
		}
		state.fillArea.LineTo(first.X, first.Y)
	}

	emit := func(p Point) {
		state.outline.LineTo(p.X, p.Y)
		if filling {
			state.fillArea.LineTo(p.X, p.Y)
		}
	}

	if len(state.points) == 2 {
		// Two points cannot be splined; draw a straight segment.
		emit(state.points[1])
	} else if spline, err := FitNatural(state.points); err != nil {
		// Duplicate x knots would put division by zero into the
		// curve; connect the knots directly instead of emitting
		// non-finite geometry.
		Logger().Warn("degenerate knot sequence, drawing straight segments",
			"series", series, "err", err)
		for _, p := range state.points[1:] {
			emit(p)
		}
	} else {
		spline.Sample(r.precision, emit)
	}

	if filling {
		// Close the region at the last knot's baseline projection.
		if transposed {
			state.fillArea.LineTo(origin.X, last.Y)
		} else {
			state.fillArea.LineTo(last.X, origin.Y)
		}
		state.fillArea.Close()

		fp := r.SeriesFillPaint(series)
		if g, ok := fp.(*LinearGradientPaint); ok && r.gradientTransformer != nil {
			fp = r.gradientTransformer.Transform(g, state.fillArea.Bounds())
		}
		surface.FillPath(state.fillArea, fp)
		state.fillArea.Clear()
	}

	surface.StrokePath(state.outline, r.SeriesPaint(series), r.strokeWidth)
}

// DrawSeries renders one series of the dataset onto the surface using
// a fresh accumulation state.
func (r *SplineRenderer) DrawSeries(surface Surface, plot *Plot, dataset XYDataset, series int) {
	state := NewSplineState()
	n := dataset.ItemCount(series)
	for item := 0; item < n; item++ {
		r.DrawItem(state, surface, plot, dataset, series, item)
	}
}

// DrawAll renders every series of the dataset onto the surface. All
// series of the pass share one accumulation state, reset between
// series.
func (r *SplineRenderer) DrawAll(surface Surface, plot *Plot, dataset XYDataset) {
	state := NewSplineState()
	for series := 0; series < dataset.SeriesCount(); series++ {
		n := dataset.ItemCount(series)
		for item := 0; item < n; item++ {
			r.DrawItem(state, surface, plot, dataset, series, item)
		}
	}
}
