// Package tui draws into a terminal.Cell frame through clipped rectangular Regions.
//
// A Region is a value: Sub, SubRect and Inset return new regions over
// the same backing cells, and every write outside a region's bounds is dropped.
// Nothing is retained between frames; callers rebuild the whole frame each time.
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bg)
//
//	left, _ := tui.SplitRectH(root.Rect(), 50)
//	inner := root.SubRect(left).Block(tui.BlockOpts{Border: tui.LineHeavy, BorderFg: fg, Bg: bg})
//	inner.Paragraph("Left", tui.AlignCenter, tui.Style{Fg: fg, Bg: bg})
//
//	term.Flush(cells, w, h)
package tui
