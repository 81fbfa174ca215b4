package tui

import (
	"github.com/lixenwraith/termgrid/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Align selects horizontal placement of a line within a region
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)
