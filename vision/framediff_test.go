package vision

import (
	"testing"

	"github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
	"github.com/stretchr/testify/require"
)

func flat(width, height int, c color.RGB) *imgio.Image {
	pixels := make([]color.RGB, width*height)
	for i := range pixels {
		pixels[i] = c
	}
	return &imgio.Image{Width: width, Height: height, Pixels: pixels}
}

func TestFindDifferencesDetectsChangedBlock(t *testing.T) {
	a := flat(100, 100, color.RGB{R: 0, G: 0, B: 0})
	b := flat(100, 100, color.RGB{R: 0, G: 0, B: 0})

	for y := 10; y < 40; y++ {
		for x := 10; x < 50; x++ {
			b.Pixels[y*100+x] = color.RGB{R: 255, G: 255, B: 255}
		}
	}

	diffs := FindDifferences(a, b, 10)
	require.Len(t, diffs, 1)
	require.Equal(t, 40, diffs[0].Width)
	require.Equal(t, 30, diffs[0].Height)
}

func TestFindDifferencesDiscardsSmallRegions(t *testing.T) {
	a := flat(50, 50, color.RGB{R: 0, G: 0, B: 0})
	b := flat(50, 50, color.RGB{R: 0, G: 0, B: 0})
	b.Pixels[5*50+5] = color.RGB{R: 255, G: 255, B: 255}

	diffs := FindDifferences(a, b, 10)
	require.Empty(t, diffs)
}

func TestFindDifferencesMismatchedDimensionsIsEmptyNotError(t *testing.T) {
	a := flat(50, 50, color.RGB{})
	b := flat(60, 50, color.RGB{})

	diffs := FindDifferences(a, b, 10)
	require.Empty(t, diffs)
}
