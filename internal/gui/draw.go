package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var wallFill = rl.NewColor(16, 16, 24, 255)

// Draw renders one frame: the heatmap grid, the controls, and any pending
// solver notice.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawGrid()
	a.drawControls()

	if a.notice != "" {
		rl.DrawText(a.notice, margin, int32(a.eigvalRect.Y)+34, 14, ColNotice)
	}

	rl.EndDrawing()
}

func (a *App) drawGrid() {
	field := a.sess.Field()
	cell := int32(a.cellSize)
	x0 := int32(a.gridRect.X)
	y0 := int32(a.gridRect.Y)

	for r, row := range field {
		for c, v := range row {
			fill := wallFill
			if !math.IsNaN(v) {
				fill = toRaylib(a.cm(v))
			}
			rl.DrawRectangle(x0+int32(c)*cell, y0+int32(r)*cell, cell, cell, fill)
		}
	}

	// Hairline grid over the cells.
	g := a.sess.Grid()
	for c := 0; c <= g.Width(); c++ {
		x := x0 + int32(c)*cell
		rl.DrawLine(x, y0, x, y0+int32(g.Height())*cell, ColGrid)
	}
	for r := 0; r <= g.Height(); r++ {
		y := y0 + int32(r)*cell
		rl.DrawLine(x0, y, x0+int32(g.Width())*cell, y, ColGrid)
	}
}

func (a *App) drawControls() {
	sp := a.sess.Spectrum()

	// Reset button.
	hover := rl.CheckCollisionPointRec(rl.GetMousePosition(), a.resetRect)
	border := ColTextDim
	if hover {
		border = ColAccent
	}
	rl.DrawRectangleLinesEx(a.resetRect, 1, border)
	rl.DrawText("RESET", int32(a.resetRect.X)+18, int32(a.resetRect.Y)+7, 14, ColText)

	rankT := float32(0)
	eigT := float32(0)
	if sp.Len() > 1 {
		rankT = float32(a.sess.Rank()) / float32(sp.Len()-1)
	}
	if span := sp.MaxValue() - sp.MinValue(); span > 0 {
		eigT = float32((a.sess.Eigenvalue() - sp.MinValue()) / span)
	}

	a.drawSlider(a.rankRect, rankT, a.dragging == dragRank,
		fmt.Sprintf("PVF %d/%d", a.sess.Rank(), sp.Len()))
	a.drawSlider(a.eigvalRect, eigT, a.dragging == dragEigval,
		fmt.Sprintf("eigenvalue %.4f", a.sess.Eigenvalue()))
}

func (a *App) drawSlider(rect rl.Rectangle, t float32, active bool, label string) {
	midY := int32(rect.Y + rect.Height/2)
	rl.DrawLine(int32(rect.X), midY, int32(rect.X+rect.Width), midY, ColTextDim)

	knobX := rect.X + t*rect.Width
	knob := ColAccent
	if active {
		knob = ColSelect
	}
	rl.DrawCircle(int32(knobX), midY, 6, knob)

	rl.DrawText(label, int32(rect.X+rect.Width)+10, midY-7, 13, ColText)
}
