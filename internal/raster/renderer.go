// Package raster drives a filter kernel over every pixel of an output raster,
// splitting the rows across parallel workers.
package raster

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"texfilter/internal/filter"
	"texfilter/internal/logging"
	"texfilter/internal/mathutil"
	"texfilter/internal/texture"
)

// Render fills dst with the filtered texture: pixel (x, y) samples at
// (x/W, y/H). Rows are split into one band per worker; each worker writes
// only its own rows. Render returns once every worker has finished, with the
// first error any of them hit. On error the raster contents are undefined.
func Render(ctx context.Context, tex *texture.Texture, dst *Raster, kernel filter.Kernel, workers int) error {
	if ctx == nil || tex == nil || dst == nil || kernel == nil {
		return fmt.Errorf("%w: nil context, texture, raster or kernel", texture.ErrInvalidArgument)
	}
	if len(dst.Pix) != dst.Width*dst.Height || dst.Width <= 0 || dst.Height <= 0 {
		return fmt.Errorf("%w: raster %dx%d with %d pixels", texture.ErrInvalidArgument, dst.Width, dst.Height, len(dst.Pix))
	}
	if !dst.busy.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: raster is already being rendered", texture.ErrInvalidArgument)
	}
	defer dst.busy.Store(false)

	start := time.Now()
	bands := Bands(dst.Height, workers)

	g, gctx := errgroup.WithContext(ctx)
	for _, band := range bands {
		g.Go(func() error {
			return renderBand(gctx, tex, dst, kernel, band)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger().Debug("render pass",
		"src", fmt.Sprintf("%dx%d", tex.Width(), tex.Height()),
		"dst", fmt.Sprintf("%dx%d", dst.Width, dst.Height),
		"workers", len(bands),
		"elapsed", time.Since(start))
	return nil
}

// RenderKind allocates a w x h raster and renders it with the kernel for k.
func RenderKind(ctx context.Context, tex *texture.Texture, w, h int, k filter.Kind, workers int) (*Raster, error) {
	kernel := k.Kernel()
	if kernel == nil {
		return nil, fmt.Errorf("%w: unknown filter kind %d", texture.ErrInvalidArgument, k)
	}
	dst, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}
	if err := Render(ctx, tex, dst, kernel, workers); err != nil {
		return nil, fmt.Errorf("raster: %s %dx%d: %w", k, w, h, err)
	}
	return dst, nil
}

// renderBand is the per-worker loop. Zero allocations per pixel.
func renderBand(ctx context.Context, tex *texture.Texture, dst *Raster, kernel filter.Kernel, band Band) error {
	w, h := float64(dst.Width), float64(dst.Height)

	for y := band.Y0; y < band.Y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		v := float64(y) / h
		rowOff := y * dst.Width
		for x := 0; x < dst.Width; x++ {
			uv := mathutil.Vec2{float64(x) / w, v}

			sel, err := filter.Select(tex, uv)
			if err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			c, err := kernel(sel, uv)
			if err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			if !c.InRange() {
				return fmt.Errorf("%w: pixel (%d,%d) color %+v outside [0,1+eps]", texture.ErrInvalidArgument, x, y, c)
			}
			dst.Pix[rowOff+x] = c.Pack()
		}
	}
	return nil
}
