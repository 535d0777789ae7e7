package filter

import (
	"fmt"

	"texfilter/internal/mathutil"
	"texfilter/internal/texture"
)

// Kernel turns a texel quad and the sample coordinate into one color.
type Kernel func(sel Selection, uv mathutil.Vec2) (texture.Color, error)

// Nearest returns the color of the corner whose quadrant contains uv. A
// sample exactly on a midpoint goes to the right or bottom.
func Nearest(sel Selection, uv mathutil.Vec2) (texture.Color, error) {
	xMid := sel.TL.UV[0] + (sel.TR.UV[0]-sel.TL.UV[0])/2
	yMid := sel.TL.UV[1] + (sel.BL.UV[1]-sel.TL.UV[1])/2

	if uv[1] < yMid {
		if uv[0] < xMid {
			return sel.TL.Color, nil
		}
		return sel.TR.Color, nil
	}
	if uv[0] < xMid {
		return sel.BL.Color, nil
	}
	return sel.BR.Color, nil
}

// Bilinear blends all four corners by their distance to the opposite edges.
func Bilinear(sel Selection, uv mathutil.Vec2) (texture.Color, error) {
	tx, ty, err := quadPosition(sel, uv)
	if err != nil {
		return texture.Color{}, err
	}

	c := sel.TL.Color.Scale((1 - tx) * (1 - ty))
	c = c.Add(sel.TR.Color.Scale(tx * (1 - ty)))
	c = c.Add(sel.BL.Color.Scale((1 - tx) * ty))
	c = c.Add(sel.BR.Color.Scale(tx * ty))
	return c, nil
}

// Triangular interpolates across one half of the quad, split along the
// diagonal from BL to TR. Only three texels contribute to any sample, which
// leaves a visible crease along the diagonal.
func Triangular(sel Selection, uv mathutil.Vec2) (texture.Color, error) {
	tri, w, err := TriangleWeights(sel, uv)
	if err != nil {
		return texture.Color{}, err
	}

	c := tri[0].Color.Scale(w[0])
	c = c.Add(tri[1].Color.Scale(w[1]))
	c = c.Add(tri[2].Color.Scale(w[2]))
	return c, nil
}

// TriangleWeights picks the half of the quad containing uv and returns its
// three texels with their barycentric weights. The upper-left half is
// {BL, TL, TR}; the lower-right half, diagonal included, is {TR, BR, BL}.
func TriangleWeights(sel Selection, uv mathutil.Vec2) ([3]Texel, mathutil.Weights, error) {
	xnorm, ynorm, err := quadPosition(sel, uv)
	if err != nil {
		return [3]Texel{}, mathutil.Weights{}, err
	}

	var tri [3]Texel
	if xnorm+ynorm < 1.0 {
		tri = [3]Texel{sel.BL, sel.TL, sel.TR}
	} else {
		tri = [3]Texel{sel.TR, sel.BR, sel.BL}
	}

	w, ok := mathutil.Barycentric(uv, tri[0].UV, tri[1].UV, tri[2].UV)
	if !ok {
		return [3]Texel{}, mathutil.Weights{}, fmt.Errorf("%w: degenerate texel triangle", texture.ErrInvalidArgument)
	}
	return tri, clampSimplex(w), nil
}

// quadPosition returns uv relative to the quad, both components in [0,1].
func quadPosition(sel Selection, uv mathutil.Vec2) (float64, float64, error) {
	xSpan := sel.TR.UV[0] - sel.TL.UV[0]
	ySpan := sel.BL.UV[1] - sel.TL.UV[1]
	if !(xSpan > 0 && ySpan > 0) {
		return 0, 0, fmt.Errorf("%w: empty texel quad", texture.ErrInvalidArgument)
	}

	xnorm := (uv[0] - sel.TL.UV[0]) / xSpan
	ynorm := (uv[1] - sel.TL.UV[1]) / ySpan
	if !(xnorm >= 0 && xnorm <= 1 && ynorm >= 0 && ynorm <= 1) {
		return 0, 0, fmt.Errorf("%w: sample (%g,%g) outside texel quad", texture.ErrInvalidArgument, uv[0], uv[1])
	}
	return xnorm, ynorm, nil
}

// clampSimplex removes rounding noise that pushes a weight of an edge sample
// below zero.
func clampSimplex(w mathutil.Weights) mathutil.Weights {
	for i := range w {
		if w[i] < 0 {
			w[i] = 0
		}
	}
	if s := w.Sum(); s != 1 && s > 0 {
		for i := range w {
			w[i] /= s
		}
	}
	return w
}
