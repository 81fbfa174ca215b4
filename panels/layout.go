// Package panels renders the static four-panel quadrants layout.
package panels

import (
	"github.com/lixenwraith/termgrid/constants"
	"github.com/lixenwraith/termgrid/terminal/tui"
)

// Layout holds the four panel rectangles
type Layout struct {
	Left        tui.Rect
	TopMiddle   tui.Rect
	TopRight    tui.Rect
	BottomRight tui.Rect
}

// Compute splits area in half horizontally, the right half in half vertically,
// and the top-right quarter in half horizontally again
// Odd extents give the extra cell to the first partition
func Compute(area tui.Rect) Layout {
	left, right := tui.SplitRectH(area, constants.SplitPercent)
	topRight, bottomRight := tui.SplitRectV(right, constants.SplitPercent)
	topMiddle, topRightMost := tui.SplitRectH(topRight, constants.SplitPercent)

	return Layout{
		Left:        left,
		TopMiddle:   topMiddle,
		TopRight:    topRightMost,
		BottomRight: bottomRight,
	}
}

// Panels returns the rectangles paired with their titles in draw order
func (l Layout) Panels() []Panel {
	return []Panel{
		{Title: constants.PanelLeft, Rect: l.Left},
		{Title: constants.PanelBottomRight, Rect: l.BottomRight},
		{Title: constants.PanelTopMiddle, Rect: l.TopMiddle},
		{Title: constants.PanelTopRight, Rect: l.TopRight},
	}
}

// Panel is one titled rectangle
type Panel struct {
	Title string
	Rect  tui.Rect
}
