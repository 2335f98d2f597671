package imgio

import (
	"image"
	"image/png"
	"io"

	"github.com/flga/gamescope/color"
)

// LoadFixturePNG decodes a PNG from r into the engine's Image type.
// cmd/scope uses it to load its bundled demo frame or a -frame file; it
// is never used on the detector hot path.
func LoadFixturePNG(r io.Reader) (*Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromStdImage(img), nil
}

func fromStdImage(img image.Image) *Image {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	pixels := make([]color.RGB, 0, width*height)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pixels = append(pixels, color.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)})
		}
	}

	return &Image{Width: width, Height: height, Pixels: pixels}
}
