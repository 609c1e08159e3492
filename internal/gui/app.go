package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkorzen/pvflab/internal/config"
	"github.com/mkorzen/pvflab/internal/heatmap"
	"github.com/mkorzen/pvflab/internal/session"
)

// Theme Colors (Monochrome Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColNotice  = rl.NewColor(220, 90, 90, 255)
)

const (
	margin    = 16
	controlsH = 128
	noticeTTL = 240 // frames
)

// Slider drag targets.
const (
	dragNone = iota
	dragRank
	dragEigval
)

// App owns the session and the window-space layout of the grid canvas,
// sliders and reset button. One instance per window; everything runs on
// the render loop thread.
type App struct {
	sess     *session.Session
	cm       heatmap.Colormap
	cellSize int

	gridRect   rl.Rectangle
	rankRect   rl.Rectangle
	eigvalRect rl.Rectangle
	resetRect  rl.Rectangle

	dragging  int
	notice    string
	noticeAge int
}

// NewApp lays out the window for the configured grid.
func NewApp(cfg *config.Config) *App {
	a := &App{
		sess:     session.NewFromConfig(cfg),
		cm:       heatmap.ByName(cfg.Colormap),
		cellSize: cfg.CellSize,
	}

	gw := float32(cfg.Width * cfg.CellSize)
	gh := float32(cfg.Height * cfg.CellSize)
	a.gridRect = rl.NewRectangle(margin, margin, gw, gh)

	// Leave room to the right of the tracks for the value labels.
	sliderW := gw - 240
	if sliderW < 120 {
		sliderW = 120
	}
	baseY := margin + gh + 16
	a.resetRect = rl.NewRectangle(margin, baseY, 88, 28)
	a.rankRect = rl.NewRectangle(margin+96, baseY+6, sliderW, 16)
	a.eigvalRect = rl.NewRectangle(margin+96, baseY+46, sliderW, 16)
	return a
}

// Run opens the window and blocks in the update-draw loop until closed.
func Run(cfg *config.Config) {
	winW := int32(cfg.Width*cfg.CellSize + 2*margin)
	winH := int32(cfg.Height*cfg.CellSize + 2*margin + controlsH)
	rl.InitWindow(winW, winH, "pvflab")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(cfg)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

// Update translates input into session operations. Wall painting follows
// the press-and-drag convention: left button paints, right button erases,
// and the stroke continues for as long as the button is held.
func (a *App) Update() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch {
		case rl.CheckCollisionPointRec(mouse, a.rankRect):
			a.dragging = dragRank
		case rl.CheckCollisionPointRec(mouse, a.eigvalRect):
			a.dragging = dragEigval
		case rl.CheckCollisionPointRec(mouse, a.resetRect):
			a.sess.Reset()
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.dragging = dragNone
	}

	switch {
	case a.dragging == dragRank && rl.IsMouseButtonDown(rl.MouseLeftButton):
		sp := a.sess.Spectrum()
		if sp.Len() > 0 {
			t := sliderT(mouse.X, a.rankRect)
			a.sess.SelectRank(int(t*float32(sp.Len()-1) + 0.5))
		}
	case a.dragging == dragEigval && rl.IsMouseButtonDown(rl.MouseLeftButton):
		sp := a.sess.Spectrum()
		if sp.Len() > 0 {
			t := float64(sliderT(mouse.X, a.eigvalRect))
			a.sess.SelectEigenvalue(sp.MinValue() + t*(sp.MaxValue()-sp.MinValue()))
		}
	case rl.CheckCollisionPointRec(mouse, a.gridRect):
		r, c := a.cellAt(mouse)
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			a.sess.SetWall(r, c)
		} else if rl.IsMouseButtonDown(rl.MouseRightButton) {
			a.sess.ClearWall(r, c)
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.sess.Reset()
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.sess.SelectRank(a.sess.Rank() - 1)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.sess.SelectRank(a.sess.Rank() + 1)
	}

	if n := a.sess.Notice(); n != "" {
		a.notice = n
		a.noticeAge = 0
	}
	if a.notice != "" {
		a.noticeAge++
		if a.noticeAge > noticeTTL {
			a.notice = ""
		}
	}
}

// cellAt maps a window position inside the grid rect to grid coordinates.
func (a *App) cellAt(mouse rl.Vector2) (row, col int) {
	col = int(mouse.X-a.gridRect.X) / a.cellSize
	row = int(mouse.Y-a.gridRect.Y) / a.cellSize
	return row, col
}

func sliderT(x float32, rect rl.Rectangle) float32 {
	t := (x - rect.X) / rect.Width
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

func toRaylib(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, 255)
}
