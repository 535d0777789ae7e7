package filter

import (
	"fmt"
	"strings"

	"texfilter/internal/mathutil"
	"texfilter/internal/texture"
)

// Kind names a filter strategy.
type Kind uint8

const (
	KindNearest Kind = iota
	KindBilinear
	KindTriangular
)

// Kinds lists every strategy in display order.
var Kinds = []Kind{KindNearest, KindBilinear, KindTriangular}

func (k Kind) String() string {
	switch k {
	case KindNearest:
		return "nearest"
	case KindBilinear:
		return "bilinear"
	case KindTriangular:
		return "triangular"
	default:
		return "unknown"
	}
}

// Kernel returns the kernel implementing k, or nil for an unknown kind.
func (k Kind) Kernel() Kernel {
	switch k {
	case KindNearest:
		return Nearest
	case KindBilinear:
		return Bilinear
	case KindTriangular:
		return Triangular
	default:
		return nil
	}
}

// ParseKind accepts the String form and a few common aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "point":
		return KindNearest, nil
	case "bilinear", "linear":
		return KindBilinear, nil
	case "triangular", "tri", "n64", "3point":
		return KindTriangular, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter %q", texture.ErrInvalidArgument, s)
	}
}

// Sample selects the quad around uv and applies the kernel for k.
func Sample(tex *texture.Texture, uv mathutil.Vec2, k Kind) (texture.Color, error) {
	kernel := k.Kernel()
	if kernel == nil {
		return texture.Color{}, fmt.Errorf("%w: unknown filter kind %d", texture.ErrInvalidArgument, k)
	}
	sel, err := Select(tex, uv)
	if err != nil {
		return texture.Color{}, err
	}
	return kernel(sel, uv)
}
