//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the board.
type HUD struct {
	panel  Panel
	width  int
	height int
	img    *ebiten.Image
	pixel  *ebiten.Image

	controls []core.ParameterControl
	rows     []controlRow
	snapshot core.ParameterSnapshot

	panelOffsetX int
}

// NewHUD constructs a HUD of the given panel size. It returns nil when the
// width is not positive.
func NewHUD(p Panel, width, height int) *HUD {
	if width <= 0 || height <= 0 {
		return nil
	}
	h := &HUD{panel: p, width: width, height: height}
	h.img = ebiten.NewImage(width, height)
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.controls = p.ParameterControls()
	h.rows = layoutControls(width, len(h.controls))
	return h
}

// Update refreshes the cached snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.panel.Parameters()
	h.handleInput()
}

// Draw paints the panel anchored at its offset.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.panelOffsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) currentValue(key string) (int, bool) {
	p, ok := h.snapshot.Lookup(key)
	if !ok || p.Type != core.ParamTypeInt {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	i, dir, ok := hitControl(h.rows, mx-h.panelOffsetX, my)
	if !ok {
		return
	}
	ctrl := h.controls[i]
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	if target, changed := adjust(ctrl, current, dir); changed {
		h.panel.SetIntParameter(ctrl.Key, target)
		h.snapshot = h.panel.Parameters()
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	titleColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	headerY := panelPadding + headerBaseline
	text.Draw(h.img, "Life Controls", face, panelPadding, headerY, titleColor)

	adjustable := map[string]bool{}
	for i, ctrl := range h.controls {
		adjustable[ctrl.Key] = true
		row := h.rows[i]
		labelY := row.top + labelBaseline
		text.Draw(h.img, ctrl.Label, face, panelPadding, labelY, labelColor)

		value := "--"
		current, ok := h.currentValue(ctrl.Key)
		if ok {
			value = strconv.Itoa(current)
		}
		bounds := text.BoundString(face, value)
		valueX := row.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.img, value, face, valueX, labelY, labelColor)

		_, canDown := adjust(ctrl, current, -1)
		_, canUp := adjust(ctrl, current, 1)
		h.drawButton(row.minusRect, "-", ok && canDown)
		h.drawButton(row.plusRect, "+", ok && canUp)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if adjustable[p.Key] {
				continue
			}
			text.Draw(h.img, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
			y += infoSpacing
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
