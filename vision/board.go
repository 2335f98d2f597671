package vision

import (
	"github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
	"github.com/flga/gamescope/internal/workerpool"
)

// sampleSize is the edge length of the centred sampling window used for
// each board cell.
const sampleSize = 10

// classifyChessColor buckets a pixel into one of the eight eliminate-board
// colour ids: 0 for empty/dark, 1-7 by hue band.
func classifyChessColor(p imgio.Image, x, y int) (uint8, bool) {
	rgb, ok := p.At(x, y)
	if !ok {
		return 0, false
	}

	hsv := rgb.ToHSV()
	if hsv.V < 0.2 {
		return 0, true
	}

	switch {
	case hsv.H < 30 || hsv.H >= 330:
		return 1, true
	case hsv.H < 60:
		return 2, true
	case hsv.H < 90:
		return 3, true
	case hsv.H < 150:
		return 4, true
	case hsv.H < 210:
		return 5, true
	case hsv.H < 270:
		return 6, true
	default:
		return 7, true
	}
}

// AnalyzeEliminateBoard divides gridBounds into rows x cols equal cells
// (integer-truncated) and classifies each cell by the modal colour
// bucket of a centred 10x10 pixel sample. Out-of-bounds samples are
// ignored. Each cell is independent work, partitioned across the shared
// worker pool.
func AnalyzeEliminateBoard(img *imgio.Image, gridBounds color.Rect, rows, cols int) [][]uint8 {
	gx, gy, gw, gh := gridBounds.X, gridBounds.Y, gridBounds.Width, gridBounds.Height
	cellWidth := gw / cols
	cellHeight := gh / rows

	board := make([][]uint8, rows)
	for i := range board {
		board[i] = make([]uint8, cols)
	}

	workerpool.ForEachIndex(rows*cols, func(i int) {
		row, col := i/cols, i%cols
		cellX := gx + col*cellWidth + cellWidth/2
		cellY := gy + row*cellHeight + cellHeight/2

		var counts [8]int
		for dy := 0; dy < sampleSize; dy++ {
			for dx := 0; dx < sampleSize; dx++ {
				px := cellX + dx - sampleSize/2
				py := cellY + dy - sampleSize/2
				if bucket, ok := classifyChessColor(*img, px, py); ok {
					counts[bucket]++
				}
			}
		}

		board[row][col] = modalBucket(counts)
	})

	return board
}

// modalBucket returns the bucket with the highest count, breaking ties
// by the lowest bucket id (a deterministic, arbitrary ordering).
func modalBucket(counts [8]int) uint8 {
	best := 0
	for b := 1; b < len(counts); b++ {
		if counts[b] > counts[best] {
			best = b
		}
	}
	return uint8(best)
}
