// Package filter implements texel selection and the three texture filter
// kernels: nearest, bilinear, and the three-point triangular filter of early
// fixed-function hardware.
package filter

import (
	"fmt"
	"math"

	"texfilter/internal/mathutil"
	"texfilter/internal/texture"
)

// Texel is one sampled texture pixel: its integer position, its own
// normalized coordinate and its color.
type Texel struct {
	X, Y  int
	UV    mathutil.Vec2
	Color texture.Color
}

// Selection is the 2x2 quad of texels enclosing a sample coordinate.
// TL.UV[0] <= u <= TR.UV[0] and TL.UV[1] <= v <= BL.UV[1].
type Selection struct {
	TL, TR, BL, BR Texel
}

// Select returns the quad enclosing uv. Texel i sits at i/(size-1), so the
// first and last texels lie exactly on 0 and 1.
//
// A coordinate of exactly 1 selects the last quad, placing the sample on its
// right or bottom edge. Coordinates outside [0,1] and textures with fewer
// than two texels per axis are rejected.
func Select(tex *texture.Texture, uv mathutil.Vec2) (Selection, error) {
	w, h := tex.Width(), tex.Height()
	if w < 2 || h < 2 {
		return Selection{}, fmt.Errorf("%w: %dx%d texture has no texel quad", texture.ErrInvalidArgument, w, h)
	}
	if !uv.IsFinite() || uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
		return Selection{}, fmt.Errorf("%w: sample (%g,%g) outside [0,1]", texture.ErrInvalidArgument, uv[0], uv[1])
	}

	x0 := baseTexel(uv[0], w)
	y0 := baseTexel(uv[1], h)

	var sel Selection
	var err error
	if sel.TL, err = makeTexel(tex, x0, y0); err != nil {
		return Selection{}, err
	}
	if sel.TR, err = makeTexel(tex, x0+1, y0); err != nil {
		return Selection{}, err
	}
	if sel.BL, err = makeTexel(tex, x0, y0+1); err != nil {
		return Selection{}, err
	}
	if sel.BR, err = makeTexel(tex, x0+1, y0+1); err != nil {
		return Selection{}, err
	}

	if !sel.Brackets(uv) {
		return Selection{}, fmt.Errorf("%w: quad at (%d,%d) does not bracket (%g,%g)",
			texture.ErrInvalidArgument, x0, y0, uv[0], uv[1])
	}
	return sel, nil
}

// Brackets reports whether uv lies inside the quad, edges included.
func (s Selection) Brackets(uv mathutil.Vec2) bool {
	return s.TL.UV[0] <= uv[0] && uv[0] <= s.TR.UV[0] &&
		s.TL.UV[1] <= uv[1] && uv[1] <= s.BL.UV[1]
}

// Texels returns the corners in TL, TR, BL, BR order.
func (s Selection) Texels() [4]Texel {
	return [4]Texel{s.TL, s.TR, s.BL, s.BR}
}

// baseTexel floors t*(n-1) and keeps the result on a valid quad origin.
func baseTexel(t float64, n int) int {
	i := int(math.Floor(t * float64(n-1)))
	if i > n-2 {
		i = n - 2
	}
	// The quotient i/(n-1) and the product t*(n-1) round independently;
	// step by one so the quad still brackets t.
	if i > 0 && texelCoord(i, n) > t {
		i--
	} else if i < n-2 && texelCoord(i+1, n) < t {
		i++
	}
	return i
}

func texelCoord(i, n int) float64 {
	return float64(i) / float64(n-1)
}

func makeTexel(tex *texture.Texture, x, y int) (Texel, error) {
	c, err := tex.At(x, y)
	if err != nil {
		return Texel{}, err
	}
	return Texel{
		X:     x,
		Y:     y,
		UV:    mathutil.Vec2{texelCoord(x, tex.Width()), texelCoord(y, tex.Height())},
		Color: c,
	}, nil
}
