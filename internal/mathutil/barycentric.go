package mathutil

// Weights holds barycentric weights for the vertices a, b, c of a triangle.
type Weights [3]float64

// Sum returns w[0] + w[1] + w[2]. Exactly 1 up to rounding for any
// non-degenerate triangle.
func (w Weights) Sum() float64 {
	return w[0] + w[1] + w[2]
}

// Inside reports whether all weights are within [-eps, 1+eps].
func (w Weights) Inside(eps float64) bool {
	for _, x := range w {
		if x < -eps || x > 1+eps {
			return false
		}
	}
	return true
}

// Barycentric returns the weights of p relative to triangle (a, b, c).
// ok is false when the triangle is degenerate.
func Barycentric(p, a, b, c Vec2) (w Weights, ok bool) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return Weights{}, false
	}

	w[1] = (d11*d20 - d01*d21) / denom
	w[2] = (d00*d21 - d01*d20) / denom
	w[0] = 1.0 - w[1] - w[2]
	return w, true
}
