// Package heatmap turns a selected eigenvector into a 2D scalar field and
// renders it as a color-mapped image. Wall cells carry a NaN sentinel so
// renderers can paint them as background.
package heatmap

import (
	"math"

	"github.com/mkorzen/pvflab/internal/spectral"
)

// Field maps the rank-th eigenvector of s back onto grid coordinates.
// Free cells receive the eigenvector component (already normalized into
// [-1, 1]); wall cells receive NaN. An empty spectrum or out-of-range rank
// yields an all-NaN field of the grid's shape.
func Field(s *spectral.Spectrum, rank int) [][]float64 {
	rows, cols := s.Shape()
	field := make([][]float64, rows)
	for r := range field {
		field[r] = make([]float64, cols)
		for c := range field[r] {
			field[r][c] = math.NaN()
		}
	}
	if s.Len() == 0 || rank < 0 || rank >= s.Len() {
		return field
	}
	v := s.Vector(rank)
	for i, cell := range s.Cells() {
		field[cell.Row][cell.Col] = v[i]
	}
	return field
}
