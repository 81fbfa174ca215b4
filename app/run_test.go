package app

import (
	"errors"
	"testing"

	"github.com/lixenwraith/termgrid/board"
	"github.com/lixenwraith/termgrid/input"
	"github.com/lixenwraith/termgrid/panels"
	"github.com/lixenwraith/termgrid/session"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// fakeSession replays events and counts draws; running out of events reports ErrClosed
type fakeSession struct {
	w, h    int
	events  []terminal.Event
	draws   int
	drawErr error
	cells   []terminal.Cell
}

func (f *fakeSession) Size() (int, int) { return f.w, f.h }
func (f *fakeSession) Close() error { return nil }

func (f *fakeSession) Draw(fn func(tui.Region)) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	f.draws++
	f.cells = make([]terminal.Cell, f.w*f.h)
	fn(tui.NewRegion(f.cells, f.w, 0, 0, f.w, f.h))
	return nil
}

func (f *fakeSession) ReadEvent() (terminal.Event, error) {
	if len(f.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}, session.ErrClosed
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func press(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func pressRune(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestRunGrid(t *testing.T) {
	quit := pressRune('q')
	release := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRight, Action: terminal.ActionRelease}
	repeat := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyDown, Action: terminal.ActionRepeat}
	resize := terminal.Event{Type: terminal.EventResize, Width: 30, Height: 12}

	tests := []struct {
		name      string
		events    []terminal.Event
		wantDraws int
		col, row  int
	}{
		{"immediate_quit", []terminal.Event{quit}, 1, 0, 0},
		{"right_right_down", []terminal.Event{press(terminal.KeyRight), press(terminal.KeyRight), press(terminal.KeyDown), quit}, 4, 2, 1},
		{"left_wraps", []terminal.Event{press(terminal.KeyLeft), quit}, 2, 7, 0},
		{"up_wraps", []terminal.Event{press(terminal.KeyUp), quit}, 2, 0, 7},
		{"unknown_key", []terminal.Event{pressRune('x'), quit}, 2, 0, 0},
		{"upper_q_ignored", []terminal.Event{pressRune('Q'), quit}, 2, 0, 0},
		{"release_and_repeat_ignored", []terminal.Event{release, repeat, quit}, 3, 0, 0},
		{"resize_redraws", []terminal.Event{resize, quit}, 2, 0, 0},
		{"ctrl_c_ignored", []terminal.Event{press(terminal.KeyCtrlC), quit}, 2, 0, 0},
		{"shift_arrow_moves", []terminal.Event{{Type: terminal.EventKey, Key: terminal.KeyRight, Modifiers: terminal.ModShift}, quit}, 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSession{w: 20, h: 10, events: tt.events}
			m := NewGridModel(board.DefaultPalette())
			if err := Run(s, m); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if s.draws != tt.wantDraws {
				t.Errorf("draws = %d, want %d", s.draws, tt.wantDraws)
			}
			if c := m.Cursor(); c.Col() != tt.col || c.Row() != tt.row {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", c.Col(), c.Row(), tt.col, tt.row)
			}
			if !m.Exited() {
				t.Error("model not exited")
			}
		})
	}
}

func TestRunDrawReflectsPriorMoves(t *testing.T) {
	p := board.DefaultPalette()
	s := &fakeSession{w: 20, h: 10, events: []terminal.Event{press(terminal.KeyRight), press(terminal.KeyDown), pressRune('q')}}
	m := NewGridModel(p)

	// Check the last frame: cursor at (1,1) occupies inner x 2..3, y 1
	if err := Run(s, m); err != nil {
		t.Fatal(err)
	}
	for dx := 0; dx < 2; dx++ {
		c := s.cells[2*s.w+3+dx]
		if c.Bg != p.Highlight {
			t.Errorf("cursor cell x=%d bg = %v, want highlight", 3+dx, c.Bg)
		}
	}
	if c := s.cells[1*s.w+1]; c.Bg != p.Dark {
		t.Errorf("origin bg = %v, want dark", c.Bg)
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("draw", func(t *testing.T) {
		drawErr := errors.New("write failed")
		s := &fakeSession{w: 4, h: 4, drawErr: drawErr, events: []terminal.Event{pressRune('q')}}
		err := Run(s, NewGridModel(board.DefaultPalette()))
		if !errors.Is(err, drawErr) {
			t.Errorf("Run = %v, want %v", err, drawErr)
		}
	})

	t.Run("closed_input", func(t *testing.T) {
		s := &fakeSession{w: 4, h: 4, events: []terminal.Event{press(terminal.KeyRight)}}
		err := Run(s, NewGridModel(board.DefaultPalette()))
		if !errors.Is(err, session.ErrClosed) {
			t.Errorf("Run = %v, want ErrClosed", err)
		}
		if s.draws != 2 {
			t.Errorf("draws = %d, want 2", s.draws)
		}
	})
}

func TestRunQuadrants(t *testing.T) {
	s := &fakeSession{w: 80, h: 24, events: []terminal.Event{press(terminal.KeyLeft), pressRune('q')}}
	m := NewQuadrantsModel(panels.DefaultTheme)
	if err := Run(s, m); err != nil {
		t.Fatal(err)
	}
	if s.draws != 2 {
		t.Errorf("draws = %d, want 2", s.draws)
	}
	// Left panel spans [0,40); its top-left corner is a heavy border
	if r := s.cells[0].Rune; r != '┏' {
		t.Errorf("corner = %q, want '┏'", r)
	}
}

func TestRunKeyTable(t *testing.T) {
	kt := input.DefaultKeyTable()
	kt.Runes['x'] = input.CommandQuit

	s := &fakeSession{w: 4, h: 4, events: []terminal.Event{pressRune('x')}}
	if err := Run(s, NewQuadrantsModel(panels.DefaultTheme), WithKeyTable(kt)); err != nil {
		t.Fatal(err)
	}
	if s.draws != 1 {
		t.Errorf("draws = %d, want 1", s.draws)
	}
}
