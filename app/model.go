package app

import (
	"github.com/lixenwraith/termgrid/board"
	"github.com/lixenwraith/termgrid/input"
	"github.com/lixenwraith/termgrid/panels"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Model is the state a program renders and mutates
type Model interface {
	// Render projects the current state into r; it must not mutate state
	Render(r tui.Region)

	// Handle applies one command; CommandNone is a no-op
	Handle(cmd input.Command)

	// Exited reports whether the quit command was seen
	Exited() bool
}

// GridModel is the checkerboard cursor program
type GridModel struct {
	cursor  board.Cursor
	palette board.Palette
	exited  bool
}

// NewGridModel returns a model with the cursor at (0,0)
func NewGridModel(p board.Palette) *GridModel {
	return &GridModel{cursor: board.NewCursor(), palette: p}
}

// Cursor returns the current cursor position
func (m *GridModel) Cursor() board.Cursor {
	return m.cursor
}

func (m *GridModel) Render(r tui.Region) {
	r.Fill(m.palette.Background)
	board.Render(r, m.cursor, m.palette)
}

func (m *GridModel) Handle(cmd input.Command) {
	switch cmd {
	case input.CommandQuit:
		m.exited = true
	case input.CommandLeft:
		m.cursor.Move(board.DirLeft)
	case input.CommandRight:
		m.cursor.Move(board.DirRight)
	case input.CommandUp:
		m.cursor.Move(board.DirUp)
	case input.CommandDown:
		m.cursor.Move(board.DirDown)
	}
}

func (m *GridModel) Exited() bool {
	return m.exited
}

// QuadrantsModel is the static panel layout program; only quit has an effect
type QuadrantsModel struct {
	theme  panels.Theme
	exited bool
}

func NewQuadrantsModel(th panels.Theme) *QuadrantsModel {
	return &QuadrantsModel{theme: th}
}

func (m *QuadrantsModel) Render(r tui.Region) {
	panels.Render(r, m.theme)
}

func (m *QuadrantsModel) Handle(cmd input.Command) {
	if cmd == input.CommandQuit {
		m.exited = true
	}
}

func (m *QuadrantsModel) Exited() bool {
	return m.exited
}
