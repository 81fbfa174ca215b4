package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termgrid/board"
	"github.com/lixenwraith/termgrid/input"
	"github.com/lixenwraith/termgrid/session"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// simOpener returns an opener over a simulation screen with evs queued
func simOpener(t *testing.T, evs ...tcell.Event) (func() (session.Session, error), *int) {
	t.Helper()
	opened := 0
	return func() (session.Session, error) {
		opened++
		screen := tcell.NewSimulationScreen("UTF-8")
		s, err := session.NewTcell(screen)
		if err != nil {
			return nil, err
		}
		screen.SetSize(40, 12)
		for _, ev := range evs {
			if err := screen.PostEvent(ev); err != nil {
				t.Fatalf("PostEvent: %v", err)
			}
		}
		return s, nil
	}, &opened
}

func gridModel() Model { return NewGridModel(board.DefaultPalette()) }

func TestCommandQuit(t *testing.T) {
	open, opened := simOpener(t,
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	)
	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	cmd := NewCommand("gridcursor", "test", gridModel, WithOpener(open), WithDebugLogger(logger))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if *opened != 1 {
		t.Errorf("opened %d sessions, want 1", *opened)
	}
	if got := logs.String(); !strings.Contains(got, "command=right") || !strings.Contains(got, "command=quit") {
		t.Errorf("debug log missing commands:\n%s", got)
	}
}

func TestCommandCtrlCIgnored(t *testing.T) {
	open, _ := simOpener(t,
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	)
	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	cmd := NewCommand("gridcursor", "test", gridModel, WithOpener(open), WithDebugLogger(logger))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := logs.String()
	if !strings.Contains(got, "key=ctrl_c") || !strings.Contains(got, "command=none") {
		t.Errorf("ctrl_c not logged as ignored:\n%s", got)
	}
	if !strings.Contains(got, "command=quit") {
		t.Errorf("q did not quit after ctrl_c:\n%s", got)
	}
}

func TestCommandWritesTraceOnFailure(t *testing.T) {
	open := func() (session.Session, error) {
		return &fakeSession{w: 20, h: 10, events: []terminal.Event{press(terminal.KeyRight)}}, nil
	}
	cmd := NewCommand("gridcursor", "test", gridModel, WithOpener(open))
	cmd.SetArgs([]string{})
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	if !errors.Is(err, session.ErrClosed) {
		t.Fatalf("Execute = %v, want ErrClosed", err)
	}
	got := stderr.String()
	if !strings.Contains(got, "gridcursor") || !strings.Contains(got, "command=right") {
		t.Errorf("trace missing from stderr:\n%s", got)
	}
}

func TestCommandQuietOnSuccess(t *testing.T) {
	open, _ := simOpener(t,
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	)
	cmd := NewCommand("gridcursor", "test", gridModel, WithOpener(open))
	cmd.SetArgs([]string{})
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr written on clean exit: %q", stderr.String())
	}
}

func TestCommandRejectsArgs(t *testing.T) {
	open, opened := simOpener(t)
	cmd := NewCommand("quadrants", "test", gridModel, WithOpener(open))
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute accepted a positional argument")
	}
	if *opened != 0 {
		t.Errorf("session opened %d times for a rejected command", *opened)
	}
}

func TestCommandOpenError(t *testing.T) {
	open := func() (session.Session, error) { return nil, session.ErrNotTerminal }
	cmd := NewCommand("gridcursor", "test", gridModel, WithOpener(open))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if !errors.Is(err, session.ErrNotTerminal) {
		t.Errorf("Execute = %v, want ErrNotTerminal", err)
	}
}

type panicModel struct{}

func (panicModel) Render(tui.Region) { panic("render exploded") }
func (panicModel) Handle(input.Command) {}
func (panicModel) Exited() bool { return false }

func TestCommandRecoversPanic(t *testing.T) {
	open, _ := simOpener(t)
	cmd := NewCommand("gridcursor", "test", func() Model { return panicModel{} }, WithOpener(open))
	cmd.SetArgs([]string{})
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "render exploded") {
		t.Fatalf("Execute = %v, want recovered panic", err)
	}
	// Alternate screen exit is part of the reset sequence
	if !strings.Contains(out.String(), "\x1b[?1049l") {
		t.Errorf("reset sequence not written: %q", out.String())
	}
}
