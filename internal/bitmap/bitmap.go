// Package bitmap decodes map source images into exact 8-bit RGB pixels.
package bitmap

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/samdwyer/chipmap/internal/mapdata"
)

// Image is a decoded image addressed from the origin.
type Image struct {
	img    image.Image
	format string
}

// Load opens and decodes the image at path. BMP, PNG, GIF and JPEG are supported.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &Image{img: img, format: format}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Image {
	return &Image{img: img}
}

// Format returns the decoder name ("bmp", "png", ...), empty for FromImage.
func (i *Image) Format() string {
	return i.format
}

// Size returns the image dimensions.
func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// RGBAt returns the non-premultiplied color at (x, y) relative to the
// image's top-left corner. Alpha is dropped.
func (i *Image) RGBAt(x, y int) mapdata.RGB {
	origin := i.img.Bounds().Min
	c := color.NRGBAModel.Convert(i.img.At(origin.X+x, origin.Y+y)).(color.NRGBA)
	return mapdata.RGB{R: c.R, G: c.G, B: c.B}
}
