package board

import (
	"fmt"

	"github.com/lixenwraith/termgrid/terminal"
)

// Shade is the color class of one board square
type Shade uint8

const (
	ShadeHighlight Shade = iota
	ShadeDark
	ShadeLight
)

// ShadeAt classifies square (col,row); the first matching rule wins:
// the cursor square is highlighted, then even col+row is dark, everything else light
func ShadeAt(col, row int, c Cursor) Shade {
	if col == c.Col() && row == c.Row() {
		return ShadeHighlight
	}
	if (col+row)%2 == 0 {
		return ShadeDark
	}
	return ShadeLight
}

// Palette maps shades and board chrome to colors
type Palette struct {
	Dark       terminal.RGB
	Light      terminal.RGB
	Highlight  terminal.RGB
	Border     terminal.RGB
	Title      terminal.RGB
	Background terminal.RGB
}

const (
	defaultDark      = "#000000"
	defaultLight     = "#ffffff"
	defaultHighlight = "#888888"
)

// DefaultPalette returns black and white squares with a gray highlight
func DefaultPalette() Palette {
	return MustPalette(defaultDark, defaultLight, defaultHighlight)
}

// ParsePalette builds a palette from "#rrggbb" square colors
// Chrome colors are derived from the light square
func ParsePalette(dark, light, highlight string) (Palette, error) {
	var p Palette
	var err error
	if p.Dark, err = terminal.RGBFromHex(dark); err != nil {
		return Palette{}, fmt.Errorf("dark: %w", err)
	}
	if p.Light, err = terminal.RGBFromHex(light); err != nil {
		return Palette{}, fmt.Errorf("light: %w", err)
	}
	if p.Highlight, err = terminal.RGBFromHex(highlight); err != nil {
		return Palette{}, fmt.Errorf("highlight: %w", err)
	}

	p.Background = terminal.Obsidian
	p.Border = p.Light.Blend(p.Background, 0.25)
	p.Title = p.Light
	return p, nil
}

// MustPalette is ParsePalette for compile-time constants; panics on invalid input
func MustPalette(dark, light, highlight string) Palette {
	p, err := ParsePalette(dark, light, highlight)
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the square color for s
func (p Palette) Color(s Shade) terminal.RGB {
	switch s {
	case ShadeHighlight:
		return p.Highlight
	case ShadeDark:
		return p.Dark
	default:
		return p.Light
	}
}
