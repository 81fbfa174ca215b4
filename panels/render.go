package panels

import (
	"github.com/lixenwraith/termgrid/terminal"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Theme defines panel colors
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	Border   terminal.RGB
	Title    terminal.RGB
	LineType tui.LineType
}

// DefaultTheme provides heavy borders on a dark background
var DefaultTheme = Theme{
	Bg:       terminal.Obsidian,
	Fg:       terminal.LightGray,
	Border:   terminal.SteelBlue,
	Title:    terminal.White,
	LineType: tui.LineHeavy,
}

// Render fills r and draws each panel with its title centered on the first interior row
func Render(r tui.Region, th Theme) {
	r.Fill(th.Bg)

	layout := Compute(tui.Rect{W: r.W, H: r.H})
	for _, p := range layout.Panels() {
		inner := r.SubRect(p.Rect).Block(tui.BlockOpts{
			Border:   th.LineType,
			BorderFg: th.Border,
			TitleFg:  th.Title,
			Bg:       th.Bg,
		})
		inner.Paragraph(p.Title, tui.AlignCenter, tui.Style{Fg: th.Fg, Bg: th.Bg, Attr: terminal.AttrBold})
	}
}
