package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mkorzen/pvflab/internal/config"
	"github.com/mkorzen/pvflab/internal/heatmap"
	"github.com/mkorzen/pvflab/internal/session"
)

// Editing modes. Draw and erase emulate press-and-drag: while active,
// moving the cursor paints the cells it enters.
const (
	modeIdle = iota
	modeDraw
	modeErase
)

var colormapNames = []string{"plasma", "viridis"}

// Model is the Bubble Tea model for the terminal frontend. It owns the
// session; all edits and recomputes happen inside Update.
type Model struct {
	sess     *session.Session
	cm       heatmap.Colormap
	cmIndex  int
	cursorR  int
	cursorC  int
	mode     int
	notice   string
	showHelp bool
}

// NewModel builds the TUI model for a configured session.
func NewModel(cfg *config.Config) Model {
	m := Model{
		sess: session.NewFromConfig(cfg),
		cm:   heatmap.ByName(cfg.Colormap),
	}
	for i, name := range colormapNames {
		if name == cfg.Colormap {
			m.cmIndex = i
		}
	}
	return m
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key events: cursor movement, wall edits, and selection.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case " ":
		if m.sess.Grid().IsFree(m.cursorR, m.cursorC) {
			m.sess.SetWall(m.cursorR, m.cursorC)
		} else {
			m.sess.ClearWall(m.cursorR, m.cursorC)
		}
	case "w", "d":
		m.mode = modeDraw
		m.sess.SetWall(m.cursorR, m.cursorC)
	case "e":
		m.mode = modeErase
		m.sess.ClearWall(m.cursorR, m.cursorC)
	case "esc":
		m.mode = modeIdle
	case "r":
		m.sess.Reset()
	case "[":
		m.sess.SelectRank(m.sess.Rank() - 1)
	case "]":
		m.sess.SelectRank(m.sess.Rank() + 1)
	case "{":
		m.slideEigenvalue(-1)
	case "}":
		m.slideEigenvalue(1)
	case "c":
		m.cmIndex = (m.cmIndex + 1) % len(colormapNames)
		m.cm = heatmap.ByName(colormapNames[m.cmIndex])
	case "?":
		m.showHelp = !m.showHelp
	}

	if n := m.sess.Notice(); n != "" {
		m.notice = n
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	g := m.sess.Grid()
	r, c := m.cursorR+dr, m.cursorC+dc
	if r < 0 {
		r = 0
	}
	if r >= g.Height() {
		r = g.Height() - 1
	}
	if c < 0 {
		c = 0
	}
	if c >= g.Width() {
		c = g.Width() - 1
	}
	m.cursorR, m.cursorC = r, c

	switch m.mode {
	case modeDraw:
		m.sess.SetWall(r, c)
	case modeErase:
		m.sess.ClearWall(r, c)
	}
}

// slideEigenvalue nudges the selection along the eigenvalue axis, snapping
// to the nearest eigenpair the way the continuous slider does.
func (m *Model) slideEigenvalue(dir int) {
	sp := m.sess.Spectrum()
	if sp.Len() < 2 {
		return
	}
	step := (sp.MaxValue() - sp.MinValue()) / float64(sp.Len())
	if step <= 0 {
		return
	}
	target := m.sess.Eigenvalue() + float64(dir)*step
	before := m.sess.Rank()
	m.sess.SelectEigenvalue(target)
	// Degenerate clusters can snap back to the same rank; force one step.
	if m.sess.Rank() == before {
		m.sess.SelectRank(before + dir)
	}
}

// View renders the heatmap grid next to the stats panel.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("PVF LAB") + "\n")
	s.WriteString(m.renderGrid())

	stats := statsStyle.Render(m.renderStats())
	main := lipgloss.JoinHorizontal(lipgloss.Top, s.String(), stats)

	if m.showHelp {
		return m.helpOverlay() + "\n" + main
	}
	return main + "\n" + helpStyle.Render(
		"arrows:Move  SP:Toggle  W:Draw E:Erase ESC:Idle  R:Reset  [ ]:Rank  { }:Eigval  C:Colors  Q:Quit")
}

func (m Model) renderGrid() string {
	g := m.sess.Grid()
	field := m.sess.Field()

	var sb strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := "  "
			if r == m.cursorR && c == m.cursorC {
				cell = "[]"
			}
			v := field[r][c]
			if math.IsNaN(v) {
				if cell == "[]" {
					sb.WriteString(wallStyle.Inherit(cursorStyle).Render(cell))
				} else {
					sb.WriteString(wallStyle.Render("··"))
				}
				continue
			}
			bg := lipgloss.Color(heatmap.Hex(m.cm(v)))
			style := lipgloss.NewStyle().Background(bg)
			if cell == "[]" {
				style = style.Inherit(cursorStyle)
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderStats() string {
	sp := m.sess.Spectrum()
	g := m.sess.Grid()

	var s strings.Builder
	modeName := "idle"
	switch m.mode {
	case modeDraw:
		modeName = "draw walls"
	case modeErase:
		modeName = "erase walls"
	}

	s.WriteString(labelStyle.Render("Mode") + modeStyle.Render(modeName) + "\n")
	s.WriteString(labelStyle.Render("Free cells") + valueStyle.Render(fmt.Sprintf("%d / %d", g.FreeCount(), g.Width()*g.Height())) + "\n")
	s.WriteString(labelStyle.Render("PVF rank") + valueStyle.Render(fmt.Sprintf("%d / %d", m.sess.Rank(), sp.Len())) + "\n")
	s.WriteString(labelStyle.Render("Eigenvalue") + valueStyle.Render(fmt.Sprintf("%.4f", m.sess.Eigenvalue())) + "\n")
	s.WriteString(labelStyle.Render("Colormap") + valueStyle.Render(colormapNames[m.cmIndex]) + "\n")

	if sp.Len() > 1 {
		chart := asciigraph.Plot(sp.Values(),
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption("eigenvalue profile"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.notice != "" {
		s.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	return s.String()
}

func (m Model) helpOverlay() string {
	return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Arrows/hjkl - Move cursor           ║
║  Space       - Toggle wall           ║
║  W           - Draw-walls mode       ║
║  E           - Erase mode            ║
║  Esc         - Idle (stop painting)  ║
║  R           - Reset all walls       ║
║  [ / ]       - Select by rank        ║
║  { / }       - Select by eigenvalue  ║
║  C           - Cycle colormap        ║
║  ?           - Toggle this help      ║
║  Q           - Quit                  ║
╚══════════════════════════════════════╝`
}
