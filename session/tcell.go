package session

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Tcell is a Session over a tcell.Screen
type Tcell struct {
	screen tcell.Screen
	frame  frame
	closed bool
}

// NewTcell initializes screen and returns a session owning it
func NewTcell(screen tcell.Screen) (*Tcell, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Tcell{screen: screen}, nil
}

func (s *Tcell) Size() (int, int) {
	return s.screen.Size()
}

func (s *Tcell) Draw(fn func(tui.Region)) error {
	if s.closed {
		return ErrClosed
	}
	w, h := s.screen.Size()
	fn(s.frame.region(w, h))

	for y := 0; y < h; y++ {
		row := s.frame.cells[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			c := row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, tcellStyle(c))
			// Wide rune placeholder belongs to this cell
			if r >= 0x80 && runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
	}
	s.screen.Show()
	return nil
}

func (s *Tcell) ReadEvent() (terminal.Event, error) {
	if s.closed {
		return terminal.Event{}, ErrClosed
	}
	ev := s.screen.PollEvent()
	if ev == nil {
		return terminal.Event{Type: terminal.EventClosed}, ErrClosed
	}
	// Resize leaves the physical screen in an unknown state; repaint it fully
	if _, ok := ev.(*tcell.EventResize); ok {
		s.screen.Sync()
	}
	return fromTcell(ev), nil
}

func (s *Tcell) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.screen.Fini()
	return nil
}

// tcellStyle converts cell colors and attributes
func tcellStyle(c terminal.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg)).
		Bold(c.Attrs&terminal.AttrBold != 0).
		Dim(c.Attrs&terminal.AttrDim != 0).
		Italic(c.Attrs&terminal.AttrItalic != 0).
		Underline(c.Attrs&terminal.AttrUnderline != 0).
		Blink(c.Attrs&terminal.AttrBlink != 0).
		Reverse(c.Attrs&terminal.AttrReverse != 0)
}

func tcellColor(c terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
	tcell.KeyCtrlSpace:  terminal.KeyCtrlSpace,
}

// fromTcell translates a tcell event; unsupported events become KeyNone key events
// tcell only reports key presses
func fromTcell(ev tcell.Event) terminal.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		out := terminal.Event{Type: terminal.EventKey, Modifiers: fromTcellMods(ev.Modifiers())}
		switch k := ev.Key(); {
		case k == tcell.KeyRune:
			out.Key = terminal.KeyRune
			out.Rune = ev.Rune()
		case tcellKeys[k] != terminal.KeyNone:
			out.Key = tcellKeys[k]
		case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
			out.Key = terminal.KeyCtrlA + terminal.Key(k-tcell.KeyCtrlA)
			out.Modifiers &^= terminal.ModCtrl
		case k >= tcell.KeySOH && k <= tcell.KeySUB:
			// Raw control bytes, as delivered by tty screens
			out.Key = terminal.KeyCtrlA + terminal.Key(k-tcell.KeySOH)
			out.Modifiers &^= terminal.ModCtrl
		}
		return out

	case *tcell.EventResize:
		w, h := ev.Size()
		return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}
	}
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyNone}
}

func fromTcellMods(m tcell.ModMask) terminal.Modifier {
	var mod terminal.Modifier
	if m&tcell.ModShift != 0 {
		mod |= terminal.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= terminal.ModCtrl
	}
	return mod
}
