// Package export serializes spectra and heatmaps for use outside the
// interactive frontends. Everything writes to an io.Writer (the CLI passes
// stdout); the tool itself never persists files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mkorzen/pvflab/internal/spectral"
)

// SpectrumCSV writes one row per eigenvalue: rank, eigenvalue. With
// rank >= 0 it instead writes the chosen eigenvector mapped onto grid
// coordinates: row, col, component.
func SpectrumCSV(w io.Writer, s *spectral.Spectrum, rank int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if rank < 0 {
		if err := cw.Write([]string{"rank", "eigenvalue"}); err != nil {
			return err
		}
		for i, v := range s.Values() {
			rec := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 9, 64)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return cw.Error()
	}

	if rank >= s.Len() {
		return spectral.ErrIndexRange
	}
	if err := cw.Write([]string{"row", "col", "component"}); err != nil {
		return err
	}
	vec := s.Vector(rank)
	for i, cell := range s.Cells() {
		rec := []string{
			strconv.Itoa(cell.Row),
			strconv.Itoa(cell.Col),
			strconv.FormatFloat(vec[i], 'f', 9, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Error()
}
