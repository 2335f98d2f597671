package imgio

import (
	"testing"

	"github.com/flga/gamescope/color"
	"github.com/stretchr/testify/require"
)

func TestFromARGBBytesDropsAlpha(t *testing.T) {
	data := []byte{
		0xFF, 0x10, 0x20, 0x30,
		0x00, 0x40, 0x50, 0x60,
	}

	img, err := FromARGBBytes(data, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 1, img.Height)
	require.Equal(t, []color.RGB{{0x10, 0x20, 0x30}, {0x40, 0x50, 0x60}}, img.Pixels)
}

func TestFromRGBBytes(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}

	img, err := FromRGBBytes(data, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []color.RGB{{0x10, 0x20, 0x30}, {0x40, 0x50, 0x60}}, img.Pixels)
}

func TestFromRGBBytesShortBufferTruncates(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30, 0x40}

	img, err := FromRGBBytes(data, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, len(img.Pixels))
	require.Equal(t, color.RGB{0x10, 0x20, 0x30}, img.Pixels[0])
	require.Equal(t, color.RGB{}, img.Pixels[1])
}

func TestFromRGBBytesNegativeDimensions(t *testing.T) {
	_, err := FromRGBBytes(nil, -1, 4)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestImageAtOutOfBounds(t *testing.T) {
	img := &Image{Width: 2, Height: 2, Pixels: make([]color.RGB, 4)}

	_, ok := img.At(-1, 0)
	require.False(t, ok)
	_, ok = img.At(2, 0)
	require.False(t, ok)
	_, ok = img.At(0, 2)
	require.False(t, ok)

	_, ok = img.At(1, 1)
	require.True(t, ok)
}
