package tui

// SplitPercent returns the size of the first partition when n cells are split at pct
// Rounds half up so odd extents give the extra cell to the first partition
func SplitPercent(n, pct int) int {
	if n <= 0 {
		return 0
	}
	pct = max(0, min(pct, 100))
	return min((n*pct+50)/100, n)
}

// SplitRectH splits a rectangle into left and right at pct of its width
func SplitRectH(r Rect, pct int) (left, right Rect) {
	w := SplitPercent(r.W, pct)
	left = Rect{X: r.X, Y: r.Y, W: w, H: max(r.H, 0)}
	right = Rect{X: r.X + w, Y: r.Y, W: max(r.W, 0) - w, H: max(r.H, 0)}
	return
}

// SplitRectV splits a rectangle into top and bottom at pct of its height
func SplitRectV(r Rect, pct int) (top, bottom Rect) {
	h := SplitPercent(r.H, pct)
	top = Rect{X: r.X, Y: r.Y, W: max(r.W, 0), H: h}
	bottom = Rect{X: r.X, Y: r.Y + h, W: max(r.W, 0), H: max(r.H, 0) - h}
	return
}
