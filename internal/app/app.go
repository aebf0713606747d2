//go:build ebiten

package app

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing in ticks.
const (
	repeatDelay    = 24
	repeatInterval = 4
)

var bindings = map[Action][]ebiten.Key{
	ActionQuit:      {ebiten.KeyEscape, ebiten.KeyQ},
	ActionToggleRun: {ebiten.KeySpace},
	ActionSpeedUp:   {ebiten.KeyArrowRight},
	ActionSpeedDown: {ebiten.KeyArrowLeft},
	ActionStep:      {ebiten.KeyN},
	ActionReset:     {ebiten.KeyR},
}

// keyboard polls ebiten for the bound keys.
type keyboard struct{}

func (keyboard) Pressed(a Action) bool {
	for _, k := range bindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (keyboard) Repeated(a Action) bool {
	for _, k := range bindings[a] {
		d := inpututil.KeyPressDuration(k)
		if d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0) {
			return true
		}
	}
	return false
}

// Game adapts a Loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	timer   *core.FrameTimer
	canvas  *render.Canvas
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	cellColor color.Color
	bgColor   color.Color

	boardPx  int
	hudWidth int
}

// New constructs a Game for the provided loop.
func New(loop *Loop, cellSize, hudWidth int) *Game {
	boardPx := loop.Grid().Size().W * cellSize
	g := &Game{
		loop:      loop,
		timer:     core.NewFrameTimer(),
		canvas:    render.NewCanvas(boardPx, boardPx),
		painter:   render.NewPainter(boardPx, boardPx),
		overlay:   ui.NewOverlay(loop),
		hud:       ui.NewHUD(loop, hudWidth, boardPx),
		cellColor: color.Black,
		bgColor:   color.White,
		boardPx:   boardPx,
	}
	if g.hud != nil {
		g.hudWidth = hudWidth
	}
	return g
}

// WindowSize returns the outer size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.boardPx + g.hudWidth, g.boardPx
}

// Update polls input and advances the simulation.
func (g *Game) Update() error {
	g.overlay.Update()
	g.hud.Update(g.boardPx)
	if !g.loop.Frame(keyboard{}, g.timer.Elapsed()) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(g.bgColor)
	g.loop.Render(func(x, y, size int) {
		g.canvas.FillRect(x, y, size, g.cellColor)
	})
	g.painter.Present(screen, g.canvas)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
