// Package board renders an 8x8 checkerboard with a movable highlighted cell.
package board

import "github.com/lixenwraith/termgrid/constants"

// Direction is a cursor movement
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Cursor is the highlighted cell; both coordinates stay in [0, BoardSize)
type Cursor struct {
	col int
	row int
}

// NewCursor returns a cursor at (0,0)
func NewCursor() Cursor {
	return Cursor{}
}

// CursorAt returns a cursor with coordinates reduced modulo BoardSize
func CursorAt(col, row int) Cursor {
	return Cursor{col: wrap(col), row: wrap(row)}
}

func (c Cursor) Col() int { return c.col }
func (c Cursor) Row() int { return c.row }

// Move steps one cell in d, wrapping at the board edges
// Left and up add BoardSize-1 so the value never goes negative
func (c *Cursor) Move(d Direction) {
	switch d {
	case DirLeft:
		c.col = (c.col + constants.BoardSize - 1) % constants.BoardSize
	case DirRight:
		c.col = (c.col + 1) % constants.BoardSize
	case DirUp:
		c.row = (c.row + constants.BoardSize - 1) % constants.BoardSize
	case DirDown:
		c.row = (c.row + 1) % constants.BoardSize
	}
}

func wrap(v int) int {
	v %= constants.BoardSize
	if v < 0 {
		v += constants.BoardSize
	}
	return v
}
