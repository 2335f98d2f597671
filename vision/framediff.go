package vision

import (
	"github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
	"github.com/flga/gamescope/internal/workerpool"
)

const frameDiffMinExtent = 10

// FindDifferences returns the bounding boxes of the 4-connected
// components formed by pixels whose squared RGB distance between a and b
// exceeds tolerance squared. Components whose bounding box has either
// width or height <= 10 are discarded. Images of mismatched dimensions
// yield an empty result, not an error.
func FindDifferences(a, b *imgio.Image, tolerance uint32) []color.Rect {
	if a.Width != b.Width || a.Height != b.Height {
		return nil
	}

	width, height := a.Width, a.Height
	n := width * height
	changed := make([]bool, n)
	workerpool.ForEachIndex(n, func(i int) {
		changed[i] = a.Pixels[i].DistanceSquared(b.Pixels[i]) > tolerance*tolerance
	})

	visited := make([]bool, n)
	var out []color.Rect

	changedAt := func(idx int) bool { return changed[idx] }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if visited[idx] || !changedAt(idx) {
				continue
			}

			r := floodFillChanged(changed, width, height, x, y, visited)
			if r.bounds.Width > frameDiffMinExtent && r.bounds.Height > frameDiffMinExtent {
				out = append(out, r.bounds)
			}
		}
	}

	return out
}

// floodFillChanged is floodFillFrom specialised to a boolean admissibility
// mask instead of an HSV predicate, since frame-diff admissibility
// depends on a pair of images rather than one HSV-classified image.
func floodFillChanged(changed []bool, width, height, x0, y0 int, visited []bool) region {
	minX, maxX := x0, x0
	minY, maxY := y0, y0
	filled := 0

	stack := []int{y0*width + x0}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[idx] || !changed[idx] {
			continue
		}

		visited[idx] = true
		filled++

		x, y := idx%width, idx/width
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}

		if x > 0 {
			stack = append(stack, idx-1)
		}
		if x+1 < width {
			stack = append(stack, idx+1)
		}
		if y > 0 {
			stack = append(stack, idx-width)
		}
		if y+1 < height {
			stack = append(stack, idx+width)
		}
	}

	return region{
		bounds: color.Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1},
		filled: filled,
	}
}
