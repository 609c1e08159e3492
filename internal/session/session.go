package session

import (
	"fmt"

	"github.com/mkorzen/pvflab/internal/config"
	"github.com/mkorzen/pvflab/internal/grid"
	"github.com/mkorzen/pvflab/internal/heatmap"
	"github.com/mkorzen/pvflab/internal/spectral"
)

// Session owns a grid and its derived spectral state, and keeps them
// consistent: every structural edit triggers a synchronous recompute before
// the next read. Selection changes never trigger a recompute.
//
// A session is single-threaded by design; each frontend drives exactly one
// from its event loop.
type Session struct {
	grid     *grid.Grid
	spectrum *spectral.Spectrum
	rank     int
	built    uint64 // grid version the spectrum was built from
	fresh    bool   // false until the first successful solve
	notice   string
}

// New creates a session over an all-free width x height grid.
func New(width, height int) *Session {
	s := &Session{grid: grid.New(width, height)}
	s.spectrum = spectral.Empty(s.grid.Height(), s.grid.Width())
	s.recompute()
	return s
}

// NewFromConfig creates a session with the configured dimensions and
// initial wall layout.
func NewFromConfig(cfg *config.Config) *Session {
	s := &Session{grid: grid.New(cfg.Width, cfg.Height)}
	s.grid.ApplyWalls(cfg.InitialWalls())
	s.spectrum = spectral.Empty(s.grid.Height(), s.grid.Width())
	s.recompute()
	return s
}

// Grid exposes the underlying grid for read access. Mutations must go
// through the session so derived state stays in sync.
func (s *Session) Grid() *grid.Grid { return s.grid }

// SetWall paints a wall and refreshes derived state if the grid changed.
func (s *Session) SetWall(row, col int) {
	if s.grid.SetWall(row, col) {
		s.recompute()
	}
}

// ClearWall erases a wall and refreshes derived state if the grid changed.
func (s *Session) ClearWall(row, col int) {
	if s.grid.ClearWall(row, col) {
		s.recompute()
	}
}

// Reset clears every wall.
func (s *Session) Reset() {
	if s.grid.Reset() {
		s.recompute()
	}
}

func (s *Session) recompute() {
	sp, err := spectral.Solve(spectral.BuildLaplacian(s.grid))
	if err != nil {
		// Keep the previous spectrum; the edit stays visible on the grid
		// but the display holds the last good modes.
		s.notice = fmt.Sprintf("solver failed, showing previous spectrum: %v", err)
		return
	}
	s.spectrum = sp
	s.built = s.grid.Version()
	s.fresh = true
	s.rank = sp.ClampRank(s.rank)
}

// Spectrum returns the current (last good) spectrum.
func (s *Session) Spectrum() *spectral.Spectrum { return s.spectrum }

// Stale reports whether the spectrum lags the grid, i.e. the last solve
// failed after an edit.
func (s *Session) Stale() bool { return !s.fresh || s.built != s.grid.Version() }

// Rank returns the selected eigenpair rank.
func (s *Session) Rank() int { return s.rank }

// Eigenvalue returns the eigenvalue at the current selection, or 0 for an
// empty spectrum.
func (s *Session) Eigenvalue() float64 {
	if s.spectrum.Len() == 0 {
		return 0
	}
	return s.spectrum.Value(s.rank)
}

// SelectRank moves the selection to a rank index, clamped into range.
// No recompute happens: the spectrum is untouched by selection.
func (s *Session) SelectRank(i int) {
	s.rank = s.spectrum.ClampRank(i)
}

// SelectEigenvalue snaps the selection to the eigenpair nearest the given
// eigenvalue, mirroring the continuous eigenvalue slider.
func (s *Session) SelectEigenvalue(v float64) {
	s.rank = s.spectrum.NearestIndex(v)
}

// Field returns the heatmap field for the current selection.
func (s *Session) Field() [][]float64 {
	return heatmap.Field(s.spectrum, s.rank)
}

// Notice returns and clears the pending one-shot notice (set when the
// solver fails). Empty when there is nothing to report.
func (s *Session) Notice() string {
	n := s.notice
	s.notice = ""
	return n
}
