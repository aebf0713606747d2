//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a Canvas to a GPU image and draws it on screen.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for a canvas of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Present uploads the canvas pixels and draws them at the screen origin.
func (p *Painter) Present(dst *ebiten.Image, c *Canvas) {
	if w, h := c.Size(); w != p.w || h != p.h {
		return
	}
	p.img.WritePixels(c.Pixels())
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
