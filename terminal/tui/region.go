package tui

import "github.com/lixenwraith/termgrid/terminal"

// Rect is a plain rectangle in cell coordinates
type Rect struct {
	X, Y, W, H int
}

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x > r.W {
		x = r.W
	}
	if y > r.H {
		y = r.H
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// SubRect is Sub with a parent-relative Rect
func (r Region) SubRect(rc Rect) Region {
	return r.Sub(rc.X, rc.Y, rc.W, rc.H)
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Rect returns the absolute bounds of the region
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// index maps region-relative coordinates to a buffer index, -1 when clipped
func (r Region) index(x, y int) int {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return -1
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return -1
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return -1
	}
	return idx
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Stroke sets rune, foreground and attributes, keeping the existing background
func (r Region) Stroke(x, y int, ch rune, fg terminal.RGB, attr terminal.Attr) {
	if idx := r.index(x, y); idx >= 0 {
		c := &r.Cells[idx]
		c.Rune, c.Fg, c.Attrs = ch, fg, attr
	}
}

// At returns the cell at region-relative coordinates
func (r Region) At(x, y int) (terminal.Cell, bool) {
	idx := r.index(x, y)
	if idx < 0 {
		return terminal.Cell{}, false
	}
	return r.Cells[idx], true
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}
