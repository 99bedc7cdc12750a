package tiff

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoflaresat/vecmath/colors"
)

type ifdEntry struct {
	tag   uint16
	count uint32
	value uint32
}

// buildTiff assembles a minimal little-endian TIFF: header, one IFD with the
// given entries, then tail bytes. Offsets into the tail start at
// 14 + 12*len(entries).
func buildTiff(t *testing.T, entries []ifdEntry, tail []byte) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	buf.WriteString("II")
	binary.Write(buf, binary.LittleEndian, uint16(42))
	binary.Write(buf, binary.LittleEndian, uint32(8)) // first IFD offset

	binary.Write(buf, binary.LittleEndian, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(buf, binary.LittleEndian, e.tag)
		binary.Write(buf, binary.LittleEndian, uint16(3)) // field type, unused here
		binary.Write(buf, binary.LittleEndian, e.count)
		binary.Write(buf, binary.LittleEndian, e.value)
	}
	binary.Write(buf, binary.LittleEndian, uint32(0)) // no next IFD

	buf.Write(tail)
	return buf.Bytes()
}

func writeTempTiff(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.tif")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func tailOffset(numEntries int) uint32 {
	return uint32(14 + 12*numEntries)
}

func TestLoadStripedTiff(t *testing.T) {
	// 2x2 RGB, one uncompressed strip.
	pixels := []byte{
		255, 0, 0, 0, 255, 0, // row 0: red, green
		0, 0, 255, 255, 255, 255, // row 1: blue, white
	}

	const n = 9
	bitsOffset := tailOffset(n)
	dataOffset := bitsOffset + 6

	entries := []ifdEntry{
		{TagImageWidth, 1, 2},
		{TagImageLength, 1, 2},
		{TagBitsPerSample, 3, bitsOffset},
		{TagCompression, 1, CompressionNone},
		{TagPhotometricInterpretation, 1, PhotometricRGB},
		{TagStripOffsets, 1, dataOffset},
		{TagSamplesPerPixel, 1, 3},
		{TagRowsPerStrip, 1, 2},
		{TagStripByteCounts, 1, uint32(len(pixels))},
	}

	tail := new(bytes.Buffer)
	for i := 0; i < 3; i++ {
		binary.Write(tail, binary.LittleEndian, uint16(8))
	}
	tail.Write(pixels)

	path := writeTempTiff(t, buildTiff(t, entries, tail.Bytes()))

	img, err := LoadStripedTiff(path)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 2, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())

	assert.Equal(t, colors.From8BitRgb(255, 0, 0, 255), img.At(0, 0))
	assert.Equal(t, colors.From8BitRgb(0, 255, 0, 255), img.At(1, 0))
	assert.Equal(t, colors.From8BitRgb(0, 0, 255, 255), img.At(0, 1))
	assert.Equal(t, colors.From8BitRgb(255, 255, 255, 255), img.At(1, 1))
}

func TestLoadStripedTiffRejectsCompressed(t *testing.T) {
	const n = 9
	bitsOffset := tailOffset(n)

	entries := []ifdEntry{
		{TagImageWidth, 1, 2},
		{TagImageLength, 1, 2},
		{TagBitsPerSample, 3, bitsOffset},
		{TagCompression, 1, CompressionDeflate},
		{TagPhotometricInterpretation, 1, PhotometricRGB},
		{TagStripOffsets, 1, bitsOffset + 6},
		{TagSamplesPerPixel, 1, 3},
		{TagRowsPerStrip, 1, 2},
		{TagStripByteCounts, 1, 12},
	}

	tail := new(bytes.Buffer)
	for i := 0; i < 3; i++ {
		binary.Write(tail, binary.LittleEndian, uint16(8))
	}
	tail.Write(make([]byte, 12))

	path := writeTempTiff(t, buildTiff(t, entries, tail.Bytes()))

	_, err := LoadStripedTiff(path)
	assert.ErrorContains(t, err, "unsupported compression")
}

func TestLoadTiledTiffDeflate(t *testing.T) {
	// 2x2 RGB image stored in a single 16x16 deflate-compressed tile.
	const tileDim = 16
	raw := make([]byte, tileDim*tileDim*3)
	set := func(x, y int, r, g, b byte) {
		off := (y*tileDim + x) * 3
		raw[off], raw[off+1], raw[off+2] = r, g, b
	}
	set(0, 0, 255, 0, 0)
	set(1, 0, 0, 255, 0)
	set(0, 1, 0, 0, 255)
	set(1, 1, 40, 80, 120)

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	const n = 10
	bitsOffset := tailOffset(n)
	dataOffset := bitsOffset + 6

	entries := []ifdEntry{
		{TagImageWidth, 1, 2},
		{TagImageLength, 1, 2},
		{TagBitsPerSample, 3, bitsOffset},
		{TagCompression, 1, CompressionDeflate},
		{TagPhotometricInterpretation, 1, PhotometricRGB},
		{TagSamplesPerPixel, 1, 3},
		{TagTileWidth, 1, tileDim},
		{TagTileLength, 1, tileDim},
		{TagTileOffsets, 1, dataOffset},
		{TagTileByteCounts, 1, uint32(compressed.Len())},
	}

	tail := new(bytes.Buffer)
	for i := 0; i < 3; i++ {
		binary.Write(tail, binary.LittleEndian, uint16(8))
	}
	tail.Write(compressed.Bytes())

	path := writeTempTiff(t, buildTiff(t, entries, tail.Bytes()))

	img, err := LoadTiledTiff(path)
	require.NoError(t, err)

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.At(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.At(1, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.At(0, 1))
	assert.Equal(t, color.RGBA{R: 40, G: 80, B: 120, A: 255}, img.At(1, 1))

	// Second read of the same tile is served from the cache.
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.At(0, 0))
}

func TestParseTiffHeaderRejectsGarbage(t *testing.T) {
	path := writeTempTiff(t, []byte("PNG rather than TIFF, really"))

	_, err := LoadStripedTiff(path)
	assert.ErrorIs(t, err, ErrInvalidTiffHeader)
}

func TestParseTiffHeaderBigEndian(t *testing.T) {
	// Header fields only; big-endian byte order marker.
	buf := new(bytes.Buffer)
	buf.WriteString("MM")
	binary.Write(buf, binary.BigEndian, uint16(42))
	binary.Write(buf, binary.BigEndian, uint32(8))
	binary.Write(buf, binary.BigEndian, uint16(2))
	for _, e := range []ifdEntry{
		{TagImageWidth, 1, 640},
		{TagImageLength, 1, 320},
	} {
		binary.Write(buf, binary.BigEndian, e.tag)
		binary.Write(buf, binary.BigEndian, uint16(3))
		binary.Write(buf, binary.BigEndian, e.count)
		binary.Write(buf, binary.BigEndian, e.value)
	}
	binary.Write(buf, binary.BigEndian, uint32(0))

	hdr, err := parseTiffHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 640, hdr.Width)
	assert.Equal(t, 320, hdr.Height)
}
