package heatmap

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkorzen/pvflab/internal/grid"
	"github.com/mkorzen/pvflab/internal/spectral"
)

func TestFieldMapsVectorOntoGrid(t *testing.T) {
	g := grid.New(4, 4)
	g.SetWall(2, 2)

	s, err := spectral.Solve(spectral.BuildLaplacian(g))
	require.NoError(t, err)

	field := Field(s, 0)
	require.Len(t, field, 4)
	require.Len(t, field[0], 4)

	require.True(t, math.IsNaN(field[2][2]), "wall cell carries the sentinel")

	v := s.Vector(0)
	for i, cell := range s.Cells() {
		require.Equal(t, v[i], field[cell.Row][cell.Col])
	}
}

func TestFieldEmptySpectrumAllSentinel(t *testing.T) {
	g := grid.New(3, 2)
	g.ApplyWalls([][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}})

	s, err := spectral.Solve(spectral.BuildLaplacian(g))
	require.NoError(t, err)

	field := Field(s, 0)
	for r := range field {
		for c := range field[r] {
			require.True(t, math.IsNaN(field[r][c]))
		}
	}
}

func TestFieldOutOfRangeRank(t *testing.T) {
	g := grid.New(2, 2)
	s, err := spectral.Solve(spectral.BuildLaplacian(g))
	require.NoError(t, err)

	for _, rank := range []int{-1, 4, 100} {
		field := Field(s, rank)
		for r := range field {
			for c := range field[r] {
				require.True(t, math.IsNaN(field[r][c]), "rank %d", rank)
			}
		}
	}
}

func TestImageDimensionsAndWalls(t *testing.T) {
	field := [][]float64{
		{0.5, math.NaN()},
		{-1, 1},
	}

	img := Image(field, 3, Plasma)
	b := img.Bounds()
	require.Equal(t, 6, b.Dx())
	require.Equal(t, 6, b.Dy())

	// Center pixel of the NaN cell is the background fill.
	got := color.NRGBAModel.Convert(img.At(4, 1)).(color.NRGBA)
	require.Equal(t, Background, got)
}

func TestImageEmptyField(t *testing.T) {
	img := Image(nil, 10, Plasma)
	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())
}
