// Package postprocess holds optional steps applied to rendered rasters
// before encoding.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces img to w x h with a Catmull-Rom kernel. The scaler
// accumulates in premultiplied alpha and the NRGBA destination converts
// back on store, so fully transparent texels contribute no color.
// Images already at or below the target size are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() <= w && b.Dy() <= h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
