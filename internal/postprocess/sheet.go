package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Sheet lays panels out left to right, separated by gap pixels of bg.
// Panels may differ in size; the sheet is as tall as the tallest one.
func Sheet(panels []image.Image, gap int, bg color.Color) *image.NRGBA {
	if gap < 0 {
		gap = 0
	}
	w, h := 0, 0
	for i, p := range panels {
		b := p.Bounds()
		if i > 0 {
			w += gap
		}
		w += b.Dx()
		h = max(h, b.Dy())
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	x := 0
	for _, p := range panels {
		b := p.Bounds()
		draw.Copy(sheet, image.Pt(x, 0), p, b, draw.Src, nil)
		x += b.Dx() + gap
	}
	return sheet
}
