package spectral

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mkorzen/pvflab/internal/grid"
)

// Cell identifies a grid cell by coordinates.
type Cell struct {
	Row, Col int
}

// Laplacian is the standard graph Laplacian L = D - A over the free cells
// of a grid, with unit weights on 4-adjacent free pairs. Rows sum to zero
// and the matrix is symmetric positive semi-definite. An isolated free cell
// contributes a zero row.
type Laplacian struct {
	m     *mat.SymDense // nil when the grid has no free cells
	cells []Cell        // matrix index -> cell
	index map[Cell]int  // cell -> matrix index
	rows  int
	cols  int
}

// BuildLaplacian constructs the Laplacian for the current state of g.
// The result is deterministic: free cells are numbered in row-major order.
func BuildLaplacian(g *grid.Grid) *Laplacian {
	l := &Laplacian{
		index: make(map[Cell]int),
		rows:  g.Height(),
		cols:  g.Width(),
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.IsFree(r, c) {
				l.index[Cell{r, c}] = len(l.cells)
				l.cells = append(l.cells, Cell{r, c})
			}
		}
	}

	n := len(l.cells)
	if n == 0 {
		return l
	}

	l.m = mat.NewSymDense(n, nil)
	for i, cell := range l.cells {
		// Right and down neighbors cover every 4-adjacent pair once;
		// SetSym mirrors the off-diagonal entry.
		for _, nb := range []Cell{{cell.Row, cell.Col + 1}, {cell.Row + 1, cell.Col}} {
			j, ok := l.index[nb]
			if !ok {
				continue
			}
			l.m.SetSym(i, j, -1)
			l.m.SetSym(i, i, l.m.At(i, i)+1)
			l.m.SetSym(j, j, l.m.At(j, j)+1)
		}
	}
	return l
}

// Size returns the number of free cells, i.e. the matrix dimension.
func (l *Laplacian) Size() int { return len(l.cells) }

// Matrix returns the Laplacian matrix, or nil for an all-wall grid.
func (l *Laplacian) Matrix() *mat.SymDense { return l.m }

// Cells returns the matrix-index-to-cell bijection in index order.
func (l *Laplacian) Cells() []Cell { return l.cells }

// IndexOf maps a cell to its matrix index. ok is false for walls and
// out-of-range coordinates.
func (l *Laplacian) IndexOf(row, col int) (int, bool) {
	i, ok := l.index[Cell{row, col}]
	return i, ok
}

// Shape returns the grid dimensions the Laplacian was built from.
func (l *Laplacian) Shape() (rows, cols int) { return l.rows, l.cols }
