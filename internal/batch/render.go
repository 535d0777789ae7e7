package batch

import (
	"context"
	"image"
	"image/color"

	"texfilter/internal/filter"
	"texfilter/internal/postprocess"
	"texfilter/internal/raster"
	"texfilter/internal/texture"
)

// Settings describes one render of one texture.
type Settings struct {
	Width       int
	Height      int
	Kind        filter.Kind
	Workers     int
	Supersample int
	Sheet       bool // all filters side by side instead of Kind alone
}

// sheetGap separates panels of a comparison sheet.
const sheetGap = 4

// RenderImage renders tex per s and returns the image ready for encoding.
func RenderImage(ctx context.Context, tex *texture.Texture, s Settings) (*image.NRGBA, error) {
	if !s.Sheet {
		return renderOne(ctx, tex, s, s.Kind)
	}

	panels := make([]image.Image, 0, len(filter.Kinds))
	for _, k := range filter.Kinds {
		img, err := renderOne(ctx, tex, s, k)
		if err != nil {
			return nil, err
		}
		panels = append(panels, img)
	}
	return postprocess.Sheet(panels, sheetGap, color.NRGBA{A: 255}), nil
}

func renderOne(ctx context.Context, tex *texture.Texture, s Settings, k filter.Kind) (*image.NRGBA, error) {
	ss := max(s.Supersample, 1)
	r, err := raster.RenderKind(ctx, tex, s.Width*ss, s.Height*ss, k, s.Workers)
	if err != nil {
		return nil, err
	}
	img := r.NRGBA()
	if ss > 1 {
		img = postprocess.Downsample(img, s.Width, s.Height)
	}
	return img, nil
}
