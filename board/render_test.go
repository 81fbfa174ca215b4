package board

import (
	"testing"

	"github.com/lixenwraith/termgrid/constants"
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

func newRoot(w, h int) ([]terminal.Cell, tui.Region) {
	cells := make([]terminal.Cell, w*h)
	return cells, tui.NewRegion(cells, w, 0, 0, w, h)
}

func TestRenderScenarioRightRightDown(t *testing.T) {
	_, root := newRoot(80, 24)
	sentinel := terminal.RGB{R: 1, G: 2, B: 3}
	root.Fill(sentinel)

	c := NewCursor()
	for _, d := range []Direction{DirRight, DirRight, DirDown} {
		c.Move(d)
	}
	p := DefaultPalette()
	Render(root, c, p)

	for row := 0; row < constants.BoardSize; row++ {
		for col := 0; col < constants.BoardSize; col++ {
			want := p.Color(ShadeAt(col, row, c))
			for dx := 0; dx < constants.CellWidth; dx++ {
				x := 1 + col*constants.CellWidth + dx
				cell, _ := root.At(x, 1+row)
				if cell.Bg != want {
					t.Errorf("square (%d,%d) at x=%d: bg %+v, want %+v", col, row, x, cell.Bg, want)
				}
			}
		}
	}

	if cell, _ := root.At(5, 2); cell.Bg != p.Highlight {
		t.Errorf("cursor square (2,1) not highlighted: %+v", cell.Bg)
	}
	if cell, _ := root.At(1, 1); cell.Bg != p.Dark {
		t.Errorf("origin square not dark after cursor moved: %+v", cell.Bg)
	}
}

func TestRenderBorderAndTitle(t *testing.T) {
	_, root := newRoot(40, 12)
	Render(root, NewCursor(), DefaultPalette())

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{1, 0, 'B'},
		{5, 0, 'd'},
		{6, 0, '─'},
		{17, 0, '┐'},
		{0, 9, '└'},
		{17, 9, '┘'},
		{17, 4, '│'},
	}
	for _, c := range checks {
		cell, _ := root.At(c.x, c.y)
		if cell.Rune != c.want {
			t.Errorf("(%d,%d) = %q, want %q", c.x, c.y, cell.Rune, c.want)
		}
	}
}

func TestRenderStaysInBudget(t *testing.T) {
	cells, root := newRoot(30, 15)
	Render(root, CursorAt(7, 7), DefaultPalette())

	for y := 0; y < 15; y++ {
		for x := 0; x < 30; x++ {
			if x < constants.BoardAreaWidth && y < constants.BoardAreaHeight {
				continue
			}
			if cells[y*30+x] != (terminal.Cell{}) {
				t.Fatalf("cell (%d,%d) outside the board area was written", x, y)
			}
		}
	}
}

func TestRenderSmallRegions(t *testing.T) {
	sizes := []struct{ w, h int }{{0, 0}, {1, 1}, {5, 3}, {18, 2}, {3, 10}}
	for _, s := range sizes {
		_, root := newRoot(s.w, s.h)
		Render(root, CursorAt(3, 3), DefaultPalette())
	}
}

func TestRenderOffsetRegion(t *testing.T) {
	_, root := newRoot(40, 20)
	sub := root.Sub(10, 5, 30, 15)
	Render(sub, NewCursor(), DefaultPalette())

	if cell, _ := root.At(10, 5); cell.Rune != '┌' {
		t.Errorf("board not anchored at region origin: %q", cell.Rune)
	}
	if cell, _ := root.At(11, 6); cell.Bg != DefaultPalette().Highlight {
		t.Errorf("cursor square not at region origin + 1")
	}
}
