package mathutil

import (
	"math"
	"testing"
)

func TestVec2Ops(t *testing.T) {
	v := Vec2{1.5, -2}
	w := Vec2{0.5, 4}

	if got := v.Add(w); got != (Vec2{2, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(w); got != (Vec2{1, -6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Scale(2); got != (Vec2{3, -4}) {
		t.Errorf("Scale = %v", got)
	}
	if got := v.Dot(w); got != -7.25 {
		t.Errorf("Dot = %v, want -7.25", got)
	}
}

func TestVec2IsFinite(t *testing.T) {
	tests := []struct {
		v    Vec2
		want bool
	}{
		{Vec2{0, 1}, true},
		{Vec2{math.NaN(), 0}, false},
		{Vec2{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.v, got, tt.want)
		}
	}
}
