package texture

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
)

// EXIF orientation values as stored in tag 0x0112.
const (
	orientNormal     = 1
	orientFlipH      = 2
	orientRotate180  = 3
	orientFlipV      = 4
	orientTranspose  = 5
	orientRotate270  = 6
	orientTransverse = 7
	orientRotate90   = 8
)

const (
	markerSOI      = 0xffd8
	markerAPP1     = 0xffe1
	exifHeader     = 0x45786966 // "Exif"
	byteOrderBE    = 0x4d4d
	byteOrderLE    = 0x4949
	orientationTag = 0x0112
)

// decodeJPEG decodes a JPEG stream and turns the pixels upright according to
// its EXIF orientation tag, if any.
func decodeJPEG(r io.Reader) (image.Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return orient(img, jpegOrientation(raw)), nil
}

// jpegOrientation scans the APP1 segment of a JPEG for the EXIF orientation.
// Anything malformed or absent yields orientNormal.
func jpegOrientation(raw []byte) int {
	r := bytes.NewReader(raw)
	var u16 uint16
	var u32 uint32

	if binary.Read(r, binary.BigEndian, &u16) != nil || u16 != markerSOI {
		return orientNormal
	}

	// Walk markers until APP1.
	for {
		var marker, size uint16
		if binary.Read(r, binary.BigEndian, &marker) != nil {
			return orientNormal
		}
		if binary.Read(r, binary.BigEndian, &size) != nil {
			return orientNormal
		}
		if marker>>8 != 0xff || size < 2 {
			return orientNormal
		}
		if marker == markerAPP1 {
			break
		}
		if _, err := r.Seek(int64(size-2), io.SeekCurrent); err != nil {
			return orientNormal
		}
	}

	if binary.Read(r, binary.BigEndian, &u32) != nil || u32 != exifHeader {
		return orientNormal
	}
	if _, err := r.Seek(2, io.SeekCurrent); err != nil {
		return orientNormal
	}

	var order binary.ByteOrder
	if binary.Read(r, binary.BigEndian, &u16) != nil {
		return orientNormal
	}
	switch u16 {
	case byteOrderBE:
		order = binary.BigEndian
	case byteOrderLE:
		order = binary.LittleEndian
	default:
		return orientNormal
	}
	if _, err := r.Seek(2, io.SeekCurrent); err != nil {
		return orientNormal
	}

	// IFD0 offset is relative to the TIFF header, which we are 4 bytes into.
	if binary.Read(r, order, &u32) != nil || u32 < 8 {
		return orientNormal
	}
	if _, err := r.Seek(int64(u32-8), io.SeekCurrent); err != nil {
		return orientNormal
	}

	var numTags uint16
	if binary.Read(r, order, &numTags) != nil {
		return orientNormal
	}
	for i := 0; i < int(numTags); i++ {
		var tag uint16
		if binary.Read(r, order, &tag) != nil {
			return orientNormal
		}
		if tag != orientationTag {
			if _, err := r.Seek(10, io.SeekCurrent); err != nil {
				return orientNormal
			}
			continue
		}
		// type (2) + count (4), then the SHORT value
		if _, err := r.Seek(6, io.SeekCurrent); err != nil {
			return orientNormal
		}
		var val uint16
		if binary.Read(r, order, &val) != nil || val < 1 || val > 8 {
			return orientNormal
		}
		return int(val)
	}
	return orientNormal
}

// orient applies the transform that makes an image with orientation o display
// upright.
func orient(img image.Image, o int) image.Image {
	switch o {
	case orientFlipH:
		return imaging.FlipH(img)
	case orientRotate180:
		return imaging.Rotate180(img)
	case orientFlipV:
		return imaging.FlipV(img)
	case orientTranspose:
		return imaging.Transpose(img)
	case orientRotate270:
		return imaging.Rotate270(img)
	case orientTransverse:
		return imaging.Transverse(img)
	case orientRotate90:
		return imaging.Rotate90(img)
	}
	return img
}
