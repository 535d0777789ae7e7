package texture

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Texture is a read-only view of a row-major pixel buffer. The buffer is
// borrowed, not copied; callers must not mutate it while a render pass is
// running.
type Texture struct {
	width  int
	height int
	stride int
	format Format
	pix    []byte
}

// New wraps pix as a tightly packed texture.
func New(width, height int, format Format, pix []byte) (*Texture, error) {
	return NewStride(width, height, width*format.BytesPerPixel(), format, pix)
}

// NewStride wraps pix with an explicit row stride in bytes.
func NewStride(width, height, stride int, format Format, pix []byte) (*Texture, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unsupported pixel format %d", ErrInvalidArgument, format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: texture size %dx%d", ErrInvalidArgument, width, height)
	}
	rowBytes := width * format.BytesPerPixel()
	if stride < rowBytes {
		return nil, fmt.Errorf("%w: stride %d < row size %d", ErrInvalidArgument, stride, rowBytes)
	}
	if need := stride*(height-1) + rowBytes; len(pix) < need {
		return nil, fmt.Errorf("%w: buffer has %d bytes, need %d", ErrInvalidArgument, len(pix), need)
	}
	return &Texture{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    pix,
	}, nil
}

// FromImage converts any decoded image into an RGBA32 texture.
func FromImage(img image.Image) (*Texture, error) {
	n := toNRGBA(img)
	b := n.Bounds()
	return NewStride(b.Dx(), b.Dy(), n.Stride, FormatRGBA32, n.Pix)
}

func (t *Texture) Width() int     { return t.width }
func (t *Texture) Height() int    { return t.height }
func (t *Texture) Stride() int    { return t.stride }
func (t *Texture) Format() Format { return t.format }

// At returns the normalized color of texel (x, y).
func (t *Texture) At(x, y int) (Color, error) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Color{}, fmt.Errorf("%w: texel (%d,%d) outside %dx%d", ErrInvalidArgument, x, y, t.width, t.height)
	}
	off := y*t.stride + x*t.format.BytesPerPixel()
	switch t.format {
	case FormatRGB24:
		return readRGB24(t.pix[off : off+3]), nil
	case FormatRGBA32:
		return readRGBA32(t.pix[off : off+4]), nil
	case FormatBGRA32:
		return readBGRA32(t.pix[off : off+4]), nil
	default:
		return Color{}, fmt.Errorf("%w: unsupported pixel format %d", ErrInvalidArgument, t.format)
	}
}

func readRGB24(p []byte) Color {
	return ColorFromBytes(p[0], p[1], p[2], 255)
}

func readRGBA32(p []byte) Color {
	return ColorFromBytes(p[0], p[1], p[2], p[3])
}

func readBGRA32(p []byte) Color {
	return ColorFromBytes(p[2], p[1], p[0], p[3])
}

// toNRGBA converts any image to a zero-origin NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(src)
}
