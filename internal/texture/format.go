package texture

// Format is the pixel layout tag of a texture buffer.
type Format uint8

const (
	// FormatRGB24 is packed R, G, B bytes. Alpha reads as 1.
	FormatRGB24 Format = iota

	// FormatRGBA32 is packed R, G, B, A bytes.
	FormatRGBA32

	// FormatBGRA32 is packed B, G, R, A bytes.
	FormatBGRA32

	formatCount
)

var bytesPerPixel = [formatCount]int{
	FormatRGB24:  3,
	FormatRGBA32: 4,
	FormatBGRA32: 4,
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns 3 or 4, or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return bytesPerPixel[f]
}

func (f Format) String() string {
	switch f {
	case FormatRGB24:
		return "RGB24"
	case FormatRGBA32:
		return "RGBA32"
	case FormatBGRA32:
		return "BGRA32"
	default:
		return "Unknown"
	}
}
