package chart

// Paint represents what to draw with.
// This is a sealed interface - only types in this package implement it.
//
// Supported paint types:
//   - SolidPaint: a single solid color
//   - LinearGradientPaint: a linear color transition (see gradient.go)
//
// Example usage:
//
//	r.SetSeriesPaint(0, chart.Solid(chart.Blue))
//	r.SetSeriesFillPaint(0, chart.NewLinearGradientPaint(0, 0, 0, 1).
//	    AddColorStop(0, chart.Blue.WithAlpha(0.6)).
//	    AddColorStop(1, chart.Blue.WithAlpha(0.05)))
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	// Only types in this package can implement Paint.
	paintMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid paints, this returns the same color regardless of
	// position. For gradients, this samples the gradient at (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidPaint is a single-color paint.
// It implements the Paint interface and always returns the same color.
type SolidPaint struct {
	// Color is the solid color of this paint.
	Color RGBA
}

// paintMarker implements the sealed Paint interface.
func (SolidPaint) paintMarker() {}

// ColorAt implements Paint. Returns the solid color regardless of position.
func (p SolidPaint) ColorAt(_, _ float64) RGBA {
	return p.Color
}

// Solid creates a SolidPaint from an RGBA color.
//
// Example:
//
//	paint := chart.Solid(chart.Red)
func Solid(c RGBA) SolidPaint {
	return SolidPaint{Color: c}
}

// SolidRGB creates a SolidPaint from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
func SolidRGB(r, g, b float64) SolidPaint {
	return SolidPaint{Color: RGB(r, g, b)}
}

// WithAlpha returns a new SolidPaint with the specified alpha value.
// The RGB components are preserved.
func (p SolidPaint) WithAlpha(alpha float64) SolidPaint {
	return SolidPaint{Color: p.Color.WithAlpha(alpha)}
}
