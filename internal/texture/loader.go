package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"texfilter/internal/logging"
)

// Container headers of the OZJ/OZT texture wrappers.
const (
	ozjHeaderSize = 24
	oztHeaderSize = 4
)

type decodeFunc func(io.Reader) (image.Image, error)

// decoders is keyed by lowercase extension. TGA carries no magic number and
// the tga package registers itself as a catch-all with image.RegisterFormat,
// so sniffing through image.Decode would misroute; every format is dispatched
// by extension instead. JPEG-based formats honor EXIF orientation.
var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  decodeJPEG,
	".jpeg": decodeJPEG,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
	".ozj":  decodeJPEG,
	".ozt":  tga.Decode,
}

// Supported reports whether path has an extension Load can decode.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads an image file and returns it as an RGBA32 texture.
func Load(path string) (*Texture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unknown extension: %q", ext)
	}

	switch ext {
	case ".ozj":
		// OZJ: 24-byte header + JPEG data
		if len(raw) <= ozjHeaderSize {
			return nil, fmt.Errorf("texture: OZJ too short: %s", path)
		}
		raw = raw[ozjHeaderSize:]
	case ".ozt":
		// OZT: 4-byte header + TGA data
		if len(raw) <= oztHeaderSize {
			return nil, fmt.Errorf("texture: OZT too short: %s", path)
		}
		raw = raw[oztHeaderSize:]
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	tex, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	logging.Logger().Debug("texture loaded", "path", path, "width", tex.Width(), "height", tex.Height())
	return tex, nil
}
