package chart

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, 2)

	if got := a.Add(b); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := a.Sub(b); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(a); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(3, 0).Normalize(); got != Pt(1, 0) {
		t.Errorf("Normalize = %v, want (1,0)", got)
	}
	if got := Pt(0, 0).Normalize(); got != Pt(0, 0) {
		t.Errorf("Normalize of zero = %v, want (0,0)", got)
	}
	if got := Pt(1, 0).Perp(); got != Pt(0, 1) {
		t.Errorf("Perp = %v, want (0,1)", got)
	}
	if got := a.Lerp(b, 0.5); got != Pt(2, 3) {
		t.Errorf("Lerp = %v, want (2,3)", got)
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(-1e300, 1e300), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.NaN()), false},
		{Pt(math.Inf(1), 0), false},
		{Pt(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
