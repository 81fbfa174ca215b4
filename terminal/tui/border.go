package tui

import (
	"github.com/lixenwraith/termgrid/terminal"
)

// LineType selects the box drawing glyph set
type LineType uint8

const (
	LineSingle LineType = iota // ┌─┐│└┘
	LineHeavy                  // ┏━┓┃┗┛
)

// glyphs are the six box pieces of one LineType
type glyphs struct {
	topLeft, topRight       rune
	bottomLeft, bottomRight rune
	horizontal, vertical    rune
}

var lineGlyphs = [...]glyphs{
	LineSingle: {'┌', '┐', '└', '┘', '─', '│'},
	LineHeavy:  {'┏', '┓', '┗', '┛', '━', '┃'},
}

func (l LineType) glyphs() glyphs {
	if int(l) < len(lineGlyphs) {
		return lineGlyphs[l]
	}
	return lineGlyphs[LineSingle]
}

// Box strokes the region's outer edge, keeping the background underneath
// Regions narrower or shorter than 2 cells are left alone
func (r Region) Box(line LineType, fg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	g := line.glyphs()
	right, bottom := r.W-1, r.H-1

	for x := 1; x < right; x++ {
		r.Stroke(x, 0, g.horizontal, fg, terminal.AttrNone)
		r.Stroke(x, bottom, g.horizontal, fg, terminal.AttrNone)
	}
	for y := 1; y < bottom; y++ {
		r.Stroke(0, y, g.vertical, fg, terminal.AttrNone)
		r.Stroke(right, y, g.vertical, fg, terminal.AttrNone)
	}

	r.Stroke(0, 0, g.topLeft, fg, terminal.AttrNone)
	r.Stroke(right, 0, g.topRight, fg, terminal.AttrNone)
	r.Stroke(0, bottom, g.bottomLeft, fg, terminal.AttrNone)
	r.Stroke(right, bottom, g.bottomRight, fg, terminal.AttrNone)
}

// BlockOpts configures a bordered block
type BlockOpts struct {
	Title    string
	Border   LineType
	BorderFg terminal.RGB
	TitleFg  terminal.RGB
	Bg       terminal.RGB
	// Fill paints Bg over the whole block before drawing the border
	Fill bool
}

// Block draws a border with the title on the top edge from column 1, bold and truncated
// to the space between the corners. Returns the interior, empty below 3x3
func (r Region) Block(opts BlockOpts) Region {
	if opts.Fill {
		r.Fill(opts.Bg)
	}
	r.Box(opts.Border, opts.BorderFg)

	if opts.Title != "" && r.W > 2 && r.H > 0 {
		x := 1
		for _, ch := range Truncate(opts.Title, r.W-2) {
			r.Stroke(x, 0, ch, opts.TitleFg, terminal.AttrBold)
			x += runeWidth(ch)
		}
	}

	return r.Inset(1)
}
