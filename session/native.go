package session

import (
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Native is a Session over the terminal package
type Native struct {
	term   terminal.Terminal
	frame  frame
	closed bool
}

// NewNative initializes term and returns a session owning it
func NewNative(term terminal.Terminal) (*Native, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	return &Native{term: term}, nil
}

func (s *Native) Size() (int, int) {
	return s.term.Size()
}

func (s *Native) Draw(fn func(tui.Region)) error {
	if s.closed {
		return ErrClosed
	}
	w, h := s.term.Size()
	fn(s.frame.region(w, h))
	return s.term.Flush(s.frame.cells, w, h)
}

func (s *Native) ReadEvent() (terminal.Event, error) {
	if s.closed {
		return terminal.Event{}, ErrClosed
	}
	ev := s.term.PollEvent()
	switch ev.Type {
	case terminal.EventError:
		return ev, ev.Err
	case terminal.EventClosed:
		return ev, ErrClosed
	}
	return ev, nil
}

func (s *Native) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.term.Fini()
	return nil
}
