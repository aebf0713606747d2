//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayX = 20
	overlayY = 20
)

// Overlay draws the frame-rate counter and loop status over the board.
type Overlay struct {
	status Status
	hidden bool
	shade  *ebiten.Image
}

// NewOverlay constructs a visible overlay reporting on status.
func NewOverlay(status Status) *Overlay {
	o := &Overlay{status: status}
	o.shade = ebiten.NewImage(1, 1)
	o.shade.Fill(color.White)
	return o
}

// Update toggles visibility with the F key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.hidden = !o.hidden
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	face := basicfont.Face7x13
	fps := FPSLabel(ebiten.ActualFPS())
	status := StatusLine(o.status)

	bounds := text.BoundString(face, status)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+8), 36)
	op.GeoM.Translate(overlayX-4, overlayY-2)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 255, G: 255, B: 255, A: 200})
	screen.DrawImage(o.shade, op)

	text.Draw(screen, fps, face, overlayX, overlayY+11, color.RGBA{R: 0, G: 158, B: 47, A: 255})
	text.Draw(screen, status, face, overlayX, overlayY+27, color.RGBA{R: 40, G: 40, B: 48, A: 255})
}
