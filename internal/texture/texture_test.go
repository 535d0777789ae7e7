package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestAtFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		pix    []byte
		want   Color
	}{
		{
			name:   "rgb24 alpha is opaque",
			format: FormatRGB24,
			pix:    []byte{255, 0, 51},
			want:   Color{1, 0, 0.2, 1},
		},
		{
			name:   "rgba32",
			format: FormatRGBA32,
			pix:    []byte{255, 0, 51, 102},
			want:   Color{1, 0, 0.2, 0.4},
		},
		{
			name:   "bgra32 reorders",
			format: FormatBGRA32,
			pix:    []byte{51, 0, 255, 102},
			want:   Color{1, 0, 0.2, 0.4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex, err := New(1, 1, tt.format, tt.pix)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			got, err := tex.At(0, 0)
			if err != nil {
				t.Fatalf("At failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("At(0,0) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAtRowMajor(t *testing.T) {
	// 2x2 RGB24 with 2 bytes of row padding.
	pix := []byte{
		10, 0, 0, 20, 0, 0, 99, 99,
		30, 0, 0, 40, 0, 0, 99, 99,
	}
	tex, err := NewStride(2, 2, 8, FormatRGB24, pix)
	if err != nil {
		t.Fatalf("NewStride failed: %v", err)
	}
	want := [2][2]uint8{{10, 20}, {30, 40}}
	for y := range 2 {
		for x := range 2 {
			c, err := tex.At(x, y)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", x, y, err)
			}
			r, _, _, _ := c.Bytes()
			if r != want[y][x] {
				t.Errorf("At(%d,%d).R = %d, want %d", x, y, r, want[y][x])
			}
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	tex, err := New(2, 2, FormatRGBA32, make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := tex.At(p[0], p[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("At(%d,%d) err = %v, want ErrInvalidArgument", p[0], p[1], err)
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		stride int
		format Format
		n      int
	}{
		{"unknown format", 1, 1, 4, Format(9), 4},
		{"zero width", 0, 1, 4, FormatRGBA32, 4},
		{"negative height", 1, -1, 4, FormatRGBA32, 4},
		{"short stride", 2, 1, 4, FormatRGBA32, 8},
		{"short buffer", 2, 2, 8, FormatRGBA32, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStride(tt.w, tt.h, tt.stride, tt.format, make([]byte, tt.n))
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.RGBA{255, 0, 0, 255})
	src.Set(7, 6, color.RGBA{0, 0, 255, 255})

	tex, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if tex.Width() != 3 || tex.Height() != 2 || tex.Format() != FormatRGBA32 {
		t.Fatalf("got %dx%d %v, want 3x2 RGBA32", tex.Width(), tex.Height(), tex.Format())
	}
	if c, _ := tex.At(0, 0); c != (Color{1, 0, 0, 1}) {
		t.Errorf("At(0,0) = %+v, want red", c)
	}
	if c, _ := tex.At(2, 1); c != (Color{0, 0, 1, 1}) {
		t.Errorf("At(2,1) = %+v, want blue", c)
	}
}

func TestFormatString(t *testing.T) {
	if FormatBGRA32.String() != "BGRA32" || Format(200).String() != "Unknown" {
		t.Error("unexpected format names")
	}
	if Format(200).BytesPerPixel() != 0 {
		t.Error("unknown format should have 0 bytes per pixel")
	}
}
