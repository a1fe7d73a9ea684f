package sidescroll

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 40, true},
		{10, 20, true},   // top-left corner
		{110, 70, true},  // bottom-right corner
		{9, 40, false},   // left
		{111, 40, false}, // right
		{50, 19, false},  // above
		{50, 71, false},  // below
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 10, Y: 10, Width: 20, Height: 20}, true},
		{"adjacent right", Rect{X: 100, Y: 0, Width: 50, Height: 50}, true},
		{"separate", Rect{X: 200, Y: 200, Width: 50, Height: 50}, false},
		{"separate x", Rect{X: 101, Y: 0, Width: 50, Height: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
}

func TestSpanLen(t *testing.T) {
	if n := (Span{2, 7}).Len(); n != 5 {
		t.Errorf("Len = %d, want 5", n)
	}
	if n := (Span{7, 2}).Len(); n != 0 {
		t.Errorf("inverted Len = %d, want 0", n)
	}
}
