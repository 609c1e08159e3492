package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/mkorzen/pvflab/internal/heatmap"
)

// FieldSVG renders a heatmap field as an SVG document, one rect per cell.
// NaN cells (walls) inherit the dark background and emit no rect.
func FieldSVG(field [][]float64, cellSize int, cm heatmap.Colormap) string {
	if cellSize < 1 {
		cellSize = 1
	}
	rows := len(field)
	cols := 0
	if rows > 0 {
		cols = len(field[0])
	}
	width := cols * cellSize
	height := rows * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, heatmap.Hex(heatmap.Background)))

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := field[r][c]
			if math.IsNaN(v) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				c*cellSize, r*cellSize, cellSize, cellSize, heatmap.Hex(cm(v))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
