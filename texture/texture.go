package texture

import (
	"errors"
	"image"
	"log/slog"
	"math"
	"os"

	xtiff "github.com/echoflaresat/tiff"

	"github.com/echoflaresat/vecmath/colors"
	"github.com/echoflaresat/vecmath/texture/tiff"
	"github.com/echoflaresat/vecmath/vectors"

	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode
)

// Texture is an RGB image sampled by ECEF position vectors.
type Texture struct {
	Width  int
	Height int
	img    image.Image
}

// Load opens an equirectangular texture. Striped and tiled TIFFs are read
// lazily through mmap; anything else goes through the fallback decoders.
func Load(path string) (Texture, error) {
	img, err := loadImage(path)
	if err != nil {
		return Texture{}, err
	}

	return Texture{
		Width:  img.Bounds().Max.X,
		Height: img.Bounds().Max.Y,
		img:    img,
	}, nil
}

func loadImage(path string) (image.Image, error) {
	img, err := tiff.LoadStripedTiff(path)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, tiff.ErrInvalidTiffHeader) {
		slog.Warn("failed to load striped TIFF", "path", path, "error", err)
	}

	img, err = tiff.LoadTiledTiff(path)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, tiff.ErrInvalidTiffHeader) {
		slog.Warn("failed to load tiled TIFF", "path", path, "error", err)
	}

	// fallback to the external TIFF decoder, then the stdlib codecs
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err = xtiff.Decode(f)
	if err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	img, _, err = image.Decode(f)
	return img, err
}

// Sample maps the ECEF position P to equirectangular texture coordinates
// and returns the color there (nearest neighbor, no interpolation).
func (t Texture) Sample(P *vectors.Vec3) colors.Color4 {
	px, py, pz := float64(P.X), float64(P.Y), float64(P.Z)

	lat := math.Atan2(pz, math.Sqrt(px*px+py*py))
	lon := math.Atan2(py, px)
	if lon < 0 {
		lon += 2 * math.Pi
	}

	u := float64(t.Width)/2.0 + lon/(2*math.Pi)*float64(t.Width-1)
	u = math.Mod(u, float64(t.Width))
	if u < 0 {
		u += float64(t.Width)
	}
	v := (0.5 - (lat / math.Pi)) * float64(t.Height-1)

	x := int(u)
	y := int(v)

	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}

	c := t.img.At(x, y)
	return colors.FromStandardColor(c)
}
