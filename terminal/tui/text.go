package tui

import (
	"strings"

	"github.com/lixenwraith/termgrid/terminal"
	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal columns s occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// Truncate shortens s to at most maxW columns with … suffix
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxW, "…")
}

// Text renders text at position, truncates at region edge
// Wide runes occupy two cells; the trailing cell holds rune 0
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		if col >= r.W {
			break
		}
		w := runeWidth(ch)
		if col >= 0 {
			if w == 2 && col+1 >= r.W {
				break
			}
			r.Cell(col, y, ch, fg, bg, attr)
			if w == 2 {
				r.Cell(col+1, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) {
	r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextAligned renders one line with the given alignment
func (r Region) TextAligned(y int, s string, align Align, style Style) {
	if r.W <= 0 {
		return
	}
	if DisplayWidth(s) > r.W {
		s = Truncate(s, r.W)
	}
	x := 0
	switch align {
	case AlignCenter:
		x = (r.W - DisplayWidth(s)) / 2
	case AlignRight:
		x = r.W - DisplayWidth(s)
	}
	r.TextStyled(x, y, s, style)
}

// Paragraph renders newline-separated lines from the top of the region
// Returns number of lines rendered
func (r Region) Paragraph(text string, align Align, style Style) int {
	rendered := 0
	for i, line := range strings.Split(text, "\n") {
		if i >= r.H {
			break
		}
		r.TextAligned(i, line, align, style)
		rendered++
	}
	return rendered
}
