package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// outputBuffer manages double-buffered terminal output with diffing
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 64*1024),
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions and invalidates the front buffer
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.invalidate()
}

// invalidate forces the next flush to rewrite every cell
func (o *outputBuffer) invalidate() {
	for i := range o.front {
		o.front[i] = Cell{Rune: -1}
	}
	o.lastValid = false
	o.cursorValid = false
}

// cellEqual treats rune 0 and ' ' as the same glyph
func cellEqual(a, b Cell) bool {
	if a.Rune == 0 {
		a.Rune = ' '
	}
	if b.Rune == 0 {
		b.Rune = ' '
	}
	return a == b
}

// flush writes cells to the terminal, emitting only cells that differ from the front buffer
func (o *outputBuffer) flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return nil
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width
		for x := 0; x < width; x++ {
			idx := rowStart + x
			c := cells[idx]
			if cellEqual(c, o.front[idx]) {
				continue
			}

			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX, o.cursorY = x, y
				o.cursorValid = true
			}

			o.writeStyle(w, c.Fg, c.Bg, c.Attrs)

			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}

			o.front[idx] = c
			o.cursorX++

			// Wide rune covers the next cell; its placeholder is not emitted
			if r >= 0x80 && x+1 < width && runewidth.RuneWidth(r) == 2 {
				x++
				o.front[idx+1] = cells[idx+1]
				o.cursorX++
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	return w.Flush()
}

// writeStyle emits one combined SGR sequence when the style changes
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg RGB, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	attrChanged := !o.lastValid || attr != o.lastAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	w.Write(csi)
	first := true
	sep := func() {
		if !first {
			w.WriteByte(';')
		}
		first = false
	}

	// Attribute removal needs a reset, which also drops colors
	if attrChanged {
		sep()
		w.WriteByte('0')
		for _, a := range sgrAttrs {
			if attr&a.attr != 0 {
				sep()
				w.WriteByte(a.code)
			}
		}
		fgChanged, bgChanged = true, true
	}
	if fgChanged {
		sep()
		o.writeColor(w, fg, sgrFgRGB, sgrFg256)
	}
	if bgChanged {
		sep()
		o.writeColor(w, bg, sgrBgRGB, sgrBg256)
	}
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

var sgrAttrs = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
}

// writeColor writes color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeColor(w *bufio.Writer, c RGB, rgbPrefix, palettePrefix []byte) {
	if o.colorMode == ColorModeTrueColor {
		w.Write(rgbPrefix)
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	w.Write(palettePrefix)
	writeInt(w, int(RGBTo256(c)))
}

// clear paints the whole screen with bg and syncs the front buffer to match
func (o *outputBuffer) clear(bg RGB) error {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csi)
	o.writeColor(w, bg, sgrBgRGB, sgrBg256)
	w.WriteByte('m')
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
	return w.Flush()
}
