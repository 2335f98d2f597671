package vision

import (
	"github.com/flga/gamescope/color"
	"github.com/flga/gamescope/internal/workerpool"
)

// region is the raw result of one flood-fill traversal: its bounding box
// and the number of pixels actually visited inside it.
type region struct {
	bounds color.Rect
	filled int
}

// floodFillFrom expands a 4-connected component from the already-tested,
// already-unvisited seed (x0, y0), marking every pixel it visits in
// visited so no pixel is ever returned as part of two components.
// Traversal order beyond the seed is unspecified but deterministic for
// identical inputs (a LIFO stack, pushed in a fixed neighbour order).
func floodFillFrom(hsvImage []color.HSV, width, height, x0, y0 int, visited []bool, admissible func(color.HSV) bool) region {
	minX, maxX := x0, x0
	minY, maxY := y0, y0
	filled := 0

	stack := []int{y0*width + x0}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[idx] {
			continue
		}
		if !admissible(hsvImage[idx]) {
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

// findRegions scans seeds in row-major order over [xStart,xEnd)×[yStart,yEnd),
// flood-filling each unvisited admissible pixel found and keeping the
// regions whose bounding-box (and filled pixel count) satisfy shapeOK.
// visited is shared across the whole call so a pixel is never part of two
// returned regions, even if it lies outside the seed search window.
func findRegions(hsvImage []color.HSV, width, height, xStart, xEnd, yStart, yEnd int, admissible func(color.HSV) bool, shapeOK func(w, h, filled int) bool) []region {
	visited := make([]bool, width*height)
	var out []region

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			idx := y*width + x
			if visited[idx] || !admissible(hsvImage[idx]) {
				continue
			}

			r := floodFillFrom(hsvImage, width, height, x, y, visited, admissible)
			if shapeOK(r.bounds.Width, r.bounds.Height, r.filled) {
				out = append(out, r)
			}
		}
	}

	return out
}

func toHSVImage(pixels []color.RGB) []color.HSV {
	hsv := make([]color.HSV, len(pixels))
	n := len(pixels)
	if n == 0 {
		return hsv
	}
	workerpool.ForEachIndex(n, func(i int) {
		hsv[i] = pixels[i].ToHSV()
	})
	return hsv
}
