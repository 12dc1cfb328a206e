package chart

import "testing"

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 40, 60)

	if got := r.MaxX(); got != 50 {
		t.Errorf("MaxX() = %v, want 50", got)
	}
	if got := r.MaxY(); got != 80 {
		t.Errorf("MaxY() = %v, want 80", got)
	}
	if got := r.CenterX(); got != 30 {
		t.Errorf("CenterX() = %v, want 30", got)
	}
	if got := r.CenterY(); got != 50 {
		t.Errorf("CenterY() = %v, want 50", got)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a 40x60 rect")
	}
	if !NewRect(0, 0, 0, 5).IsEmpty() {
		t.Error("IsEmpty() = false for a zero-width rect")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 40, 60)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "center", p: Pt(30, 50), want: true},
		{name: "corner", p: Pt(10, 20), want: true},
		{name: "opposite corner", p: Pt(50, 80), want: true},
		{name: "left of", p: Pt(9, 50), want: false},
		{name: "below", p: Pt(30, 81), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(0, 0, 15, 15),
		},
		{
			name: "disjoint",
			a:    NewRect(0, 0, 2, 2),
			b:    NewRect(10, 20, 2, 2),
			want: NewRect(0, 0, 12, 22),
		},
		{
			name: "empty is identity",
			a:    Rect{},
			b:    NewRect(3, 4, 5, 6),
			want: NewRect(3, 4, 5, 6),
		},
		{
			name: "empty other is identity",
			a:    NewRect(3, 4, 5, 6),
			b:    Rect{},
			want: NewRect(3, 4, 5, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}
