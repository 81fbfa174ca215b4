package board

import (
	"github.com/lixenwraith/termgrid/constants"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Render draws the bordered board into the top-left BoardAreaWidth x BoardAreaHeight of r
// Cells outside that area are untouched; smaller regions clip
func Render(r tui.Region, c Cursor, p Palette) {
	area := r.Sub(0, 0, constants.BoardAreaWidth, constants.BoardAreaHeight)
	inner := area.Block(tui.BlockOpts{
		Title:    constants.BoardTitle,
		Border:   tui.LineSingle,
		BorderFg: p.Border,
		TitleFg:  p.Title,
		Bg:       p.Background,
	})

	for row := 0; row < constants.BoardSize; row++ {
		for col := 0; col < constants.BoardSize; col++ {
			bg := p.Color(ShadeAt(col, row, c))
			x := col * constants.CellWidth
			for dx := 0; dx < constants.CellWidth; dx++ {
				inner.Cell(x+dx, row, ' ', bg, bg, 0)
			}
		}
	}
}
