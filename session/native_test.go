package session

import (
	"errors"
	"testing"

	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

type fakeTerm struct {
	w, h    int
	initErr error
	flushes int
	last    []terminal.Cell
	events  []terminal.Event
	fini    int
}

func (f *fakeTerm) Init() error { return f.initErr }
func (f *fakeTerm) Fini() { f.fini++ }
func (f *fakeTerm) Size() (int, int) { return f.w, f.h }
func (f *fakeTerm) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }
func (f *fakeTerm) PostEvent(ev terminal.Event) { f.events = append(f.events, ev) }
func (f *fakeTerm) Flush(cells []terminal.Cell, w, h int) error {
	f.flushes++
	f.last = append(f.last[:0], cells...)
	return nil
}

func (f *fakeTerm) PollEvent() terminal.Event {
	if len(f.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func TestNativeInitError(t *testing.T) {
	want := errors.New("no tty")
	if _, err := NewNative(&fakeTerm{initErr: want}); !errors.Is(err, want) {
		t.Errorf("NewNative error = %v, want %v", err, want)
	}
}

func TestNativeDraw(t *testing.T) {
	ft := &fakeTerm{w: 4, h: 2}
	s, err := NewNative(ft)
	if err != nil {
		t.Fatal(err)
	}

	red := terminal.RGB{R: 255}
	if err := s.Draw(func(r tui.Region) { r.Cell(1, 1, 'x', red, red, 0) }); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if ft.flushes != 1 || len(ft.last) != 8 {
		t.Fatalf("flushes=%d cells=%d, want 1 and 8", ft.flushes, len(ft.last))
	}
	if ft.last[5].Rune != 'x' {
		t.Errorf("cell (1,1) = %q, want 'x'", ft.last[5].Rune)
	}

	// Second frame starts from a cleared buffer
	if err := s.Draw(func(tui.Region) {}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if ft.last[5].Rune != 0 {
		t.Errorf("stale cell after redraw: %q", ft.last[5].Rune)
	}

	// Resize grows the buffer
	ft.w, ft.h = 6, 3
	if err := s.Draw(func(r tui.Region) { r.Cell(5, 2, 'y', red, red, 0) }); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(ft.last) != 18 || ft.last[17].Rune != 'y' {
		t.Errorf("resized frame wrong: len=%d", len(ft.last))
	}
}

func TestNativeReadEvent(t *testing.T) {
	readErr := errors.New("read failed")
	ft := &fakeTerm{events: []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'},
		{Type: terminal.EventError, Err: readErr},
	}}
	s, err := NewNative(ft)
	if err != nil {
		t.Fatal(err)
	}

	ev, err := s.ReadEvent()
	if err != nil || ev.Rune != 'q' {
		t.Errorf("first event = %+v, %v", ev, err)
	}
	if _, err := s.ReadEvent(); !errors.Is(err, readErr) {
		t.Errorf("error event = %v, want %v", err, readErr)
	}
	if _, err := s.ReadEvent(); !errors.Is(err, ErrClosed) {
		t.Errorf("closed input = %v, want ErrClosed", err)
	}
}

func TestNativeCloseIdempotent(t *testing.T) {
	ft := &fakeTerm{w: 1, h: 1}
	s, err := NewNative(ft)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Close(); err != nil {
			t.Errorf("Close #%d: %v", i, err)
		}
	}
	if ft.fini != 1 {
		t.Errorf("Fini called %d times, want 1", ft.fini)
	}
	if err := s.Draw(func(tui.Region) {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Draw after Close = %v, want ErrClosed", err)
	}
	if _, err := s.ReadEvent(); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadEvent after Close = %v, want ErrClosed", err)
	}
}

func TestWith(t *testing.T) {
	t.Run("closes_after_fn", func(t *testing.T) {
		ft := &fakeTerm{w: 1, h: 1}
		open := func() (Session, error) { return NewNative(ft) }
		want := errors.New("boom")
		err := With(open, func(Session) error { return want })
		if !errors.Is(err, want) {
			t.Errorf("With = %v, want %v", err, want)
		}
		if ft.fini != 1 {
			t.Errorf("Fini called %d times, want 1", ft.fini)
		}
	})

	t.Run("open_error_wrapped", func(t *testing.T) {
		open := func() (Session, error) { return nil, ErrNotTerminal }
		called := false
		err := With(open, func(Session) error { called = true; return nil })
		if !errors.Is(err, ErrNotTerminal) {
			t.Errorf("With = %v, want ErrNotTerminal", err)
		}
		if called {
			t.Error("fn ran without a session")
		}
	})

	t.Run("closes_on_panic", func(t *testing.T) {
		ft := &fakeTerm{w: 1, h: 1}
		open := func() (Session, error) { return NewNative(ft) }
		func() {
			defer func() { _ = recover() }()
			_ = With(open, func(Session) error { panic("fail") })
		}()
		if ft.fini != 1 {
			t.Errorf("Fini called %d times after panic, want 1", ft.fini)
		}
	})
}
