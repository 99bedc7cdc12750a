package tiff

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/exp/mmap"

	"github.com/echoflaresat/vecmath/colors"
)

type stripedTiff struct {
	header TiffHeader
	reader io.ReaderAt
}

func LoadStripedTiff(path string) (image.Image, error) {

	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	header, err := parseTiffHeader(reader)
	if err != nil {
		return nil, err
	}

	if header.Compression != CompressionNone {
		return nil, fmt.Errorf("unsupported compression: %d", header.Compression)
	}

	switch header.Photometric {
	case PhotometricBlackIsZero:
		if header.SamplesPerPixel != 1 || header.BitsPerSample[0] != 8 {
			return nil, fmt.Errorf("unsupported grayscale format")
		}
	case PhotometricRGB:
		if header.SamplesPerPixel != 3 || header.BitsPerSample[0] != 8 {
			return nil, fmt.Errorf("unsupported RGB format")
		}
	default:
		return nil, fmt.Errorf("unsupported photometric: %d", header.Photometric)
	}

	if len(header.StripOffsets) == 0 || len(header.StripOffsets) != len(header.StripByteCounts) {
		return nil, fmt.Errorf("invalid strip offset/length")
	}

	return &stripedTiff{header: header, reader: reader}, nil
}

func (t *stripedTiff) ColorModel() color.Model {
	return color.RGBAModel
}

func (t *stripedTiff) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.header.Width, t.header.Height)
}

func (t *stripedTiff) At(x, y int) color.Color {
	h := t.header

	strip := y / h.RowsPerStrip
	localY := y % h.RowsPerStrip
	bytesPerPixel := h.SamplesPerPixel

	idx := h.StripOffsets[strip] + (localY*h.Width+x)*bytesPerPixel

	switch h.Photometric {
	case PhotometricRGB:
		var buf [3]byte
		_, err := t.reader.ReadAt(buf[:], int64(idx))
		if err != nil {
			panic(fmt.Sprintf("could not read RGB pixel at (%d,%d): %v", x, y, err))
		}
		return colors.From8BitRgb(buf[0], buf[1], buf[2], 255)

	case PhotometricBlackIsZero:
		var b [1]byte
		_, err := t.reader.ReadAt(b[:], int64(idx))
		if err != nil {
			panic(fmt.Sprintf("could not read grayscale pixel at (%d,%d): %v", x, y, err))
		}
		return colors.From8BitRgb(b[0], b[0], b[0], 255)
	default:
		panic(fmt.Sprintf("unsupported PhotometricInterpretation: %d", h.Photometric))
	}
}
