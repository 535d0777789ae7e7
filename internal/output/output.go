// Package output encodes rendered images to disk. The encoder is picked by
// file extension.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	".webp": func(w io.Writer, img image.Image) error {
		return nativewebp.Encode(w, img, nil)
	},
	".png": png.Encode,
	".tga": tga.Encode,
}

// Supported reports whether Save can encode to path.
func Supported(path string) bool {
	_, ok := encoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Encode writes img to w in the format named by ext (".webp", ".png", ".tga").
func Encode(w io.Writer, img image.Image, ext string) error {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return fmt.Errorf("output: unsupported format %q", ext)
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("output: encode %s: %w", ext, err)
	}
	return nil
}

// Save creates parent directories as needed and writes img to path.
func Save(path string, img image.Image) error {
	ext := filepath.Ext(path)
	if !Supported(path) {
		return fmt.Errorf("output: unsupported format %q", ext)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := Encode(f, img, ext); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}
