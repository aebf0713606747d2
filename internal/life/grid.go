package life

import (
	"hash/fnv"

	"mad-life/internal/core"
)

// Cell is a single automaton cell. Neighbors is scratch space used while a
// generation is being computed and is zero between steps.
type Cell struct {
	X, Y      int
	Alive     bool
	Neighbors int
}

// neighborOffsets lists the eight adjacent positions, orthogonal and diagonal.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {1, 1},
	{-1, 1}, {0, -1}, {1, -1}, {-1, -1},
}

// Grid implements Conway's Game of Life on a fixed, edge-clamped board.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid returns a dead grid with the provided dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := &g.cells[y*w+x]
			c.X, c.Y = x, y
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the backing cell slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index maps (x, y) to its slot in Cells. ok is false outside the board.
func (g *Grid) Index(x, y int) (idx int, ok bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return -1, false
	}
	return y*g.w + x, true
}

// At reports whether the cell at (x, y) is alive. Off-board cells are dead.
func (g *Grid) At(x, y int) bool {
	idx, ok := g.Index(x, y)
	return ok && g.cells[idx].Alive
}

// Set changes the state of the cell at (x, y). Off-board writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if idx, ok := g.Index(x, y); ok {
		g.cells[idx].Alive = alive
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Alive = false
		g.cells[i].Neighbors = 0
	}
}

// Initialize assigns every cell its coordinates and a random state drawn from
// src. Sources implementing core.PositionalSource are asked per coordinate.
func (g *Grid) Initialize(src core.BitSource) {
	positional, hasPos := src.(core.PositionalSource)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := &g.cells[y*g.w+x]
			c.X, c.Y = x, y
			if hasPos {
				c.Alive = positional.BoolAt(x, y)
			} else {
				c.Alive = src.Bool()
			}
			c.Neighbors = 0
		}
	}
}

// Step advances the board by one generation.
func (g *Grid) Step() {
	g.accumulate()
	g.resolve()
}

// accumulate adds one to the neighbor count of every in-bounds cell adjacent
// to a live cell. No cell state changes here.
func (g *Grid) accumulate() {
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Alive {
			continue
		}
		for _, off := range neighborOffsets {
			idx, ok := g.Index(c.X+off[0], c.Y+off[1])
			if !ok {
				continue
			}
			g.cells[idx].Neighbors++
		}
	}
}

// resolve applies the birth/survival rule and clears the counts.
func (g *Grid) resolve() {
	for i := range g.cells {
		c := &g.cells[i]
		n := c.Neighbors
		c.Neighbors = 0
		switch {
		case n > 3:
			c.Alive = false
		case n < 2:
			c.Alive = false
		case n == 3:
			c.Alive = true
		}
	}
}

// Render calls fill once per live cell with its pixel position and size.
func (g *Grid) Render(cellSize int, fill func(x, y, size int)) {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Alive {
			fill(c.X*cellSize, c.Y*cellSize, cellSize)
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

// Fingerprint hashes the live/dead pattern of the board. Equal boards have
// equal fingerprints.
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [64]byte
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			buf[n/8] |= 1 << (n % 8)
		}
		n++
		if n == len(buf)*8 {
			h.Write(buf[:])
			buf = [64]byte{}
			n = 0
		}
	}
	if n > 0 {
		h.Write(buf[:(n+7)/8])
	}
	return h.Sum64()
}
