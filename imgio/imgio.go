// Package imgio ingests raw pixel byte buffers into the engine's own
// image representation. Two wire encodings are accepted: 4-byte ARGB
// groups (alpha dropped) and 3-byte RGB groups, per the external
// interface the host uses to hand over a captured frame.
package imgio

import (
	"errors"
	"fmt"

	"github.com/flga/gamescope/color"
)

// ErrInvalidDimensions is returned when width or height is negative at
// ingest time. The product width*height is not checked for overflow.
var ErrInvalidDimensions = errors.New("imgio: width and height must be non-negative")

// Image is a row-major sequence of RGB pixels with known width and
// height; Pixels has exactly Width*Height entries.
type Image struct {
	Width, Height int
	Pixels        []color.RGB
}

// At returns the pixel at (x, y), or false if the coordinates are out of
// bounds. Out-of-bounds access never wraps around.
func (img *Image) At(x, y int) (color.RGB, bool) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return color.RGB{}, false
	}
	return img.Pixels[y*img.Width+x], true
}

// FromARGBBytes decodes data as row-major 4-byte [alpha, R, G, B] groups,
// dropping alpha. data shorter than one whole pixel's worth is processed
// up to the largest whole pixel count; any trailing partial pixel bytes
// are ignored.
func FromARGBBytes(data []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("imgio: FromARGBBytes: %w", ErrInvalidDimensions)
	}

	n := width * height
	maxWhole := len(data) / 4
	if maxWhole < n {
		n = maxWhole
	}

	pixels := make([]color.RGB, width*height)
	for i := 0; i < n; i++ {
		off := i * 4
		pixels[i] = color.RGB{R: data[off+1], G: data[off+2], B: data[off+3]}
	}

	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}

// FromRGBBytes decodes data as row-major 3-byte [R, G, B] groups. data
// shorter than one whole pixel's worth is processed up to the largest
// whole pixel count; any trailing partial pixel bytes are ignored.
func FromRGBBytes(data []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("imgio: FromRGBBytes: %w", ErrInvalidDimensions)
	}

	n := width * height
	maxWhole := len(data) / 3
	if maxWhole < n {
		n = maxWhole
	}

	pixels := make([]color.RGB, width*height)
	for i := 0; i < n; i++ {
		off := i * 3
		pixels[i] = color.RGB{R: data[off], G: data[off+1], B: data[off+2]}
	}

	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}
