package raster

import (
	"fmt"
	"image"
	"sync/atomic"

	"texfilter/internal/texture"
)

// Raster is the render target: row-major packed 0xRRGGBBAA colors.
// A Raster must not be copied after first use.
type Raster struct {
	Width  int
	Height int
	Pix    []uint32 // len = Width*Height

	busy atomic.Bool // set while a render pass owns Pix
}

// NewRaster allocates a zeroed raster.
func NewRaster(w, h int) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: raster size %dx%d", texture.ErrInvalidArgument, w, h)
	}
	return &Raster{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}, nil
}

// At returns the packed color at (x, y).
func (r *Raster) At(x, y int) uint32 {
	return r.Pix[y*r.Width+x]
}

// NRGBA unpacks the raster into a new image. Only meaningful after the render
// pass has returned.
func (r *Raster) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i, p := range r.Pix {
		o := i * 4
		img.Pix[o] = uint8(p >> 24)
		img.Pix[o+1] = uint8(p >> 16)
		img.Pix[o+2] = uint8(p >> 8)
		img.Pix[o+3] = uint8(p)
	}
	return img
}
