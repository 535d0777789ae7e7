package mathutil

import "math"

// Vec2 is a 2-component vector. Sample coordinates store (u, v) in [0], [1].
type Vec2 [2]float64

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

func (v Vec2) Dot(w Vec2) float64 {
	return v[0]*w[0] + v[1]*w[1]
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) &&
		!math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}
