package chart

import "testing"

func rgbaAlmostEqual(a, b RGBA, epsilon float64) bool {
	return almostEqual(a.R, b.R, epsilon) &&
		almostEqual(a.G, b.G, epsilon) &&
		almostEqual(a.B, b.B, epsilon) &&
		almostEqual(a.A, b.A, epsilon)
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradientPaint(0, 0, 10, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{name: "start", x: 0, y: 0, want: Red},
		{name: "end", x: 10, y: 0, want: Blue},
		{name: "midpoint", x: 5, y: 0, want: RGBA{R: 0.5, G: 0, B: 0.5, A: 1}},
		{name: "quarter", x: 2.5, y: 0, want: RGBA{R: 0.75, G: 0, B: 0.25, A: 1}},
		// Pad extend clamps beyond the endpoints.
		{name: "before start", x: -5, y: 0, want: Red},
		{name: "past end", x: 20, y: 0, want: Blue},
		// The gradient is horizontal, so y never matters.
		{name: "off axis", x: 5, y: 100, want: RGBA{R: 0.5, G: 0, B: 0.5, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.x, tt.y)
			if !rgbaAlmostEqual(got, tt.want, 1e-12) {
				t.Errorf("ColorAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	// Zero-length gradient falls back to the first stop.
	g := NewLinearGradientPaint(5, 5, 5, 5).
		AddColorStop(0, Green).
		AddColorStop(1, Blue)
	if got := g.ColorAt(0, 0); !rgbaAlmostEqual(got, Green, 1e-12) {
		t.Errorf("zero-length gradient ColorAt = %v, want %v", got, Green)
	}

	// No stops yields transparent.
	empty := NewLinearGradientPaint(0, 0, 1, 0)
	if got := empty.ColorAt(0.5, 0); got != Transparent {
		t.Errorf("empty gradient ColorAt = %v, want Transparent", got)
	}

	// A single stop is constant everywhere.
	single := NewLinearGradientPaint(0, 0, 1, 0).AddColorStop(0.5, Yellow)
	if got := single.ColorAt(0.9, 0); !rgbaAlmostEqual(got, Yellow, 1e-12) {
		t.Errorf("single-stop gradient ColorAt = %v, want %v", got, Yellow)
	}
}

func TestExtendModes(t *testing.T) {
	tests := []struct {
		name string
		mode ExtendMode
		t    float64
		want float64
	}{
		{name: "pad clamps low", mode: ExtendPad, t: -0.5, want: 0},
		{name: "pad clamps high", mode: ExtendPad, t: 1.5, want: 1},
		{name: "repeat wraps", mode: ExtendRepeat, t: 1.25, want: 0.25},
		{name: "repeat wraps negative", mode: ExtendRepeat, t: -0.25, want: 0.75},
		{name: "reflect mirrors", mode: ExtendReflect, t: 1.25, want: 0.75},
		{name: "reflect even period", mode: ExtendReflect, t: 2.25, want: 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyExtendMode(tt.t, tt.mode); !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("applyExtendMode(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestStandardGradientTransformer(t *testing.T) {
	g := NewLinearGradientPaint(0, 0, 0, 1).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)
	bounds := NewRect(10, 20, 40, 60)

	tests := []struct {
		name       string
		fit        GradientFit
		start, end Point
	}{
		{name: "vertical", fit: FitVertical, start: Pt(30, 20), end: Pt(30, 80)},
		{name: "horizontal", fit: FitHorizontal, start: Pt(10, 50), end: Pt(50, 50)},
		{name: "center vertical", fit: FitCenterVertical, start: Pt(30, 50), end: Pt(30, 80)},
		{name: "center horizontal", fit: FitCenterHorizontal, start: Pt(30, 50), end: Pt(50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := StandardGradientTransformer{Fit: tt.fit}
			got := tr.Transform(g, bounds)
			if got.Start != tt.start || got.End != tt.end {
				t.Errorf("Transform endpoints = %v -> %v, want %v -> %v",
					got.Start, got.End, tt.start, tt.end)
			}
			// The source gradient is untouched and the stops are
			// shared.
			if g.Start != Pt(0, 0) || g.End != Pt(0, 1) {
				t.Error("Transform mutated the source gradient")
			}
			if len(got.Stops) != 2 {
				t.Errorf("transformed gradient has %d stops, want 2", len(got.Stops))
			}
		})
	}
}

// fitListTransformer carries a non-comparable field, so comparing two
// of them with == would panic.
type fitListTransformer struct {
	fits []GradientFit
}

func (t fitListTransformer) Transform(g *LinearGradientPaint, bounds Rect) *LinearGradientPaint {
	return g
}

func TestTransformersEqual(t *testing.T) {
	std := StandardGradientTransformer{}

	tests := []struct {
		name string
		a, b GradientTransformer
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "one nil", a: std, b: nil, want: false},
		{name: "same standard", a: std, b: StandardGradientTransformer{}, want: true},
		{name: "different fit", a: std, b: StandardGradientTransformer{Fit: FitHorizontal}, want: false},
		{name: "different types", a: std, b: fitListTransformer{}, want: false},
		{
			name: "non-comparable type",
			a:    fitListTransformer{fits: []GradientFit{FitVertical}},
			b:    fitListTransformer{fits: []GradientFit{FitVertical}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transformersEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("transformersEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientEqual(t *testing.T) {
	mk := func() *LinearGradientPaint {
		return NewLinearGradientPaint(0, 0, 1, 1).
			AddColorStop(0, Red).
			AddColorStop(1, Blue)
	}

	a, b := mk(), mk()
	if !a.Equal(b) {
		t.Error("identical gradients not equal")
	}
	b.Stops[1].Color = Green
	if a.Equal(b) {
		t.Error("gradients with different stops equal")
	}
	if a.Equal(nil) {
		t.Error("gradient equal to nil")
	}
	var c *LinearGradientPaint
	if !c.Equal(nil) {
		t.Error("nil gradients not equal")
	}
}
