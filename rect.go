package chart

// Rect is an axis-aligned rectangle. It describes the plot's data area
// and the bounding box of fill regions handed to gradient transformers.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from its origin and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal center coordinate.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center coordinate.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle acts as the identity.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.MaxX(), s.MaxX()) - x,
		H: max(r.MaxY(), s.MaxY()) - y,
	}
}
