package vision

import (
	"testing"

	"github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEliminateBoardClassifiesDominantHue(t *testing.T) {
	// 2x2 grid of 40x40 cells, each a solid colour.
	width, height := 80, 80
	pixels := make([]color.RGB, width*height)

	fill := func(x0, y0, x1, y1 int, c color.RGB) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				pixels[y*width+x] = c
			}
		}
	}

	red := color.RGB{R: 230, G: 10, B: 10}     // bucket 1
	green := color.RGB{R: 10, G: 230, B: 10}    // hue 120 -> bucket 4
	blue := color.RGB{R: 10, G: 10, B: 230}     // hue 240 -> bucket 6
	dark := color.RGB{R: 5, G: 5, B: 5}         // bucket 0

	fill(0, 0, 40, 40, red)
	fill(40, 0, 80, 40, green)
	fill(0, 40, 40, 80, blue)
	fill(40, 40, 80, 80, dark)

	img := &imgio.Image{Width: width, Height: height, Pixels: pixels}

	board := AnalyzeEliminateBoard(img, color.Rect{X: 0, Y: 0, Width: 80, Height: 80}, 2, 2)

	require.Equal(t, uint8(1), board[0][0])
	require.Equal(t, uint8(4), board[0][1])
	require.Equal(t, uint8(6), board[1][0])
	require.Equal(t, uint8(0), board[1][1])
}

func TestClassifyChessColorOutOfBounds(t *testing.T) {
	img := imgio.Image{Width: 1, Height: 1, Pixels: []color.RGB{{R: 100, G: 100, B: 100}}}
	_, ok := classifyChessColor(img, 5, 5)
	require.False(t, ok)
}
