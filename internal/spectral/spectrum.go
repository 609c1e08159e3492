package spectral

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Spectrum holds the eigendecomposition of a Laplacian: eigenvalues in
// ascending order and one eigenvector per value. Vectors are scaled so the
// largest absolute component is 1, which keeps the display range stable
// across modes. A spectrum is immutable once built.
type Spectrum struct {
	values  []float64
	vectors *mat.Dense // column j pairs with values[j]
	cells   []Cell
	rows    int
	cols    int
}

// Empty returns a spectrum with no eigenpairs for a grid of the given
// shape. Renderers get a correctly sized all-sentinel field from it.
func Empty(rows, cols int) *Spectrum {
	return &Spectrum{rows: rows, cols: cols}
}

// Solve computes the spectrum of l. A Laplacian over zero free cells yields
// an empty spectrum without invoking the solver. ErrNoConvergence is
// returned when the eigensolver fails; callers are expected to keep their
// previous spectrum in that case.
func Solve(l *Laplacian) (*Spectrum, error) {
	s := &Spectrum{cells: l.Cells(), rows: l.rows, cols: l.cols}
	n := l.Size()
	if n == 0 {
		return s, nil
	}

	var es mat.EigenSym
	if !es.Factorize(l.Matrix(), true) {
		return nil, ErrNoConvergence
	}

	s.values = es.Values(nil)
	// The Laplacian is positive semi-definite; tiny negative values are
	// numerical noise.
	for i, v := range s.values {
		if v < 0 {
			s.values[i] = 0
		}
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)
	for j := 0; j < n; j++ {
		maxAbs := 0.0
		for i := 0; i < n; i++ {
			if a := math.Abs(vecs.At(i, j)); a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			vecs.Set(i, j, vecs.At(i, j)/maxAbs)
		}
	}
	s.vectors = &vecs
	return s, nil
}

// Len returns the number of eigenpairs.
func (s *Spectrum) Len() int { return len(s.values) }

// Value returns the i-th smallest eigenvalue.
func (s *Spectrum) Value(i int) float64 { return s.values[i] }

// Values returns a copy of all eigenvalues in ascending order.
func (s *Spectrum) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Vector returns a copy of the i-th eigenvector, indexed like Cells.
func (s *Spectrum) Vector(i int) []float64 {
	out := make([]float64, s.Len())
	mat.Col(out, i, s.vectors)
	return out
}

// MinValue returns the smallest eigenvalue, or 0 for an empty spectrum.
func (s *Spectrum) MinValue() float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.values[0]
}

// MaxValue returns the largest eigenvalue, or 0 for an empty spectrum.
func (s *Spectrum) MaxValue() float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.values[s.Len()-1]
}

// NearestIndex returns the rank of the first eigenvalue >= v, clamped into
// [0, Len-1]. This is the eigenvalue-slider lookup: a continuous slider
// position snaps to an existing eigenpair.
func (s *Spectrum) NearestIndex(v float64) int {
	if s.Len() == 0 {
		return 0
	}
	i := sort.SearchFloat64s(s.values, v)
	if i >= s.Len() {
		i = s.Len() - 1
	}
	return i
}

// ClampRank clamps a rank index into the valid range. An empty spectrum
// clamps everything to 0.
func (s *Spectrum) ClampRank(i int) int {
	if i < 0 || s.Len() == 0 {
		return 0
	}
	if i >= s.Len() {
		return s.Len() - 1
	}
	return i
}

// Cells returns the matrix-index-to-cell bijection shared with the
// Laplacian the spectrum was computed from.
func (s *Spectrum) Cells() []Cell { return s.cells }

// Shape returns the originating grid dimensions.
func (s *Spectrum) Shape() (rows, cols int) { return s.rows, s.cols }
