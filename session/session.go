// Package session owns the terminal for the lifetime of one program run.
//
// A Session hands out a full-screen tui.Region per Draw and blocks in ReadEvent
// for exactly one input event. Two implementations exist: Native drives the
// terminal package directly (unix), Tcell wraps a tcell.Screen (other
// platforms, and simulation screens in tests).
package session

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

var (
	// ErrClosed is returned once the session is closed or its input reached EOF
	ErrClosed = errors.New("session: closed")

	// ErrNotTerminal is returned by Open when stdin is not a tty
	ErrNotTerminal = terminal.ErrNotTerminal
)

// Session is an acquired terminal in raw mode on the alternate screen
type Session interface {
	// Size returns the current terminal dimensions
	Size() (width, height int)

	// Draw calls fn with a region covering the whole screen, then presents the frame
	Draw(fn func(tui.Region)) error

	// ReadEvent blocks until one input event is available
	ReadEvent() (terminal.Event, error)

	// Close restores the terminal; safe to call more than once
	Close() error
}

// With opens a session, runs fn, and closes the session on every path including panics
func With(open func() (Session, error), fn func(Session) error) (err error) {
	s, err := open()
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close session: %w", cerr)
		}
	}()
	return fn(s)
}

// frame is a reusable full-screen cell buffer
type frame struct {
	cells []terminal.Cell
}

// region resets the buffer for a w x h screen and returns its root region
func (f *frame) region(w, h int) tui.Region {
	w, h = max(w, 0), max(h, 0)
	if cap(f.cells) < w*h {
		f.cells = make([]terminal.Cell, w*h)
	} else {
		f.cells = f.cells[:w*h]
		clear(f.cells)
	}
	return tui.NewRegion(f.cells, w, 0, 0, w, h)
}
