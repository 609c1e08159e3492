package grid

// Grid holds the free/wall state of a grid world. Dimensions are fixed for
// the lifetime of the grid; every effective mutation bumps the version
// counter so derived state knows when to recompute.
type Grid struct {
	width, height int
	free          []bool
	version       uint64
}

// New creates an all-free grid. Dimensions below 1 are clamped to 1.
func New(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g := &Grid{
		width:  width,
		height: height,
		free:   make([]bool, width*height),
	}
	for i := range g.free {
		g.free[i] = true
	}
	return g
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) Version() uint64 { return g.version }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsFree reports whether the cell is free. Out-of-range coordinates are
// treated as walls.
func (g *Grid) IsFree(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.free[row*g.width+col]
}

// SetWall marks a cell as wall. Out-of-range coordinates are ignored.
// It reports whether the grid actually changed.
func (g *Grid) SetWall(row, col int) bool {
	return g.set(row, col, false)
}

// ClearWall marks a cell as free. Out-of-range coordinates are ignored.
// It reports whether the grid actually changed.
func (g *Grid) ClearWall(row, col int) bool {
	return g.set(row, col, true)
}

func (g *Grid) set(row, col int, free bool) bool {
	if !g.InBounds(row, col) {
		return false
	}
	idx := row*g.width + col
	if g.free[idx] == free {
		return false
	}
	g.free[idx] = free
	g.version++
	return true
}

// Reset clears all walls. The version is bumped only if any cell changed.
func (g *Grid) Reset() bool {
	changed := false
	for i := range g.free {
		if !g.free[i] {
			g.free[i] = true
			changed = true
		}
	}
	if changed {
		g.version++
	}
	return changed
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, f := range g.free {
		if f {
			n++
		}
	}
	return n
}

// ApplyWalls sets every listed (row, col) pair as a wall. Out-of-range
// entries are ignored, matching SetWall.
func (g *Grid) ApplyWalls(walls [][2]int) {
	for _, w := range walls {
		g.SetWall(w[0], w[1])
	}
}

// Clone returns an independent copy with the same cells and version.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:   g.width,
		height:  g.height,
		free:    make([]bool, len(g.free)),
		version: g.version,
	}
	copy(c.free, g.free)
	return c
}
