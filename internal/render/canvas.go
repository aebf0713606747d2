package render

import "image/color"

// Canvas is a CPU-side RGBA frame the grid renders into before it is
// uploaded to the screen.
type Canvas struct {
	w, h int
	buf  []byte
}

// NewCanvas allocates a canvas of w*h pixels.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Pixels exposes the RGBA buffer in row-major order.
func (c *Canvas) Pixels() []byte { return c.buf }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	r, g, b, a := rgba8(col)
	for base := 0; base < len(c.buf); base += 4 {
		c.buf[base+0] = r
		c.buf[base+1] = g
		c.buf[base+2] = b
		c.buf[base+3] = a
	}
}

// FillRect paints a size*size square with its top-left corner at (x, y).
// The square is clipped to the canvas.
func (c *Canvas) FillRect(x, y, size int, col color.Color) {
	if size <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+size, c.w), min(y+size, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r, g, b, a := rgba8(col)
	for py := y0; py < y1; py++ {
		row := py * c.w
		for px := x0; px < x1; px++ {
			base := (row + px) * 4
			c.buf[base+0] = r
			c.buf[base+1] = g
			c.buf[base+2] = b
			c.buf[base+3] = a
		}
	}
}

// At returns the pixel at (x, y). Off-canvas reads are transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	base := (y*c.w + x) * 4
	return color.RGBA{R: c.buf[base+0], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

func rgba8(col color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := col.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
