package heatmap

import (
	"image"
	"image/color"
	"math"
)

// Background is the wall/sentinel fill, a near-black blue like the
// placeholder used before any data arrives.
var Background = color.NRGBA{R: 16, G: 16, B: 24, A: 255}

// Image renders a field as a heatmap with square cells of cellSize pixels.
// NaN cells (walls) are painted with Background. A nil or empty field
// produces a 1x1 background image so callers always get a valid image.
func Image(field [][]float64, cellSize int, cm Colormap) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}
	rows := len(field)
	cols := 0
	if rows > 0 {
		cols = len(field[0])
	}
	if rows == 0 || cols == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, Background)
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fill := color.Color(Background)
			if v := field[r][c]; !math.IsNaN(v) {
				fill = cm(v)
			}
			for y := r * cellSize; y < (r+1)*cellSize; y++ {
				for x := c * cellSize; x < (c+1)*cellSize; x++ {
					img.Set(x, y, fill)
				}
			}
		}
	}
	return img
}
