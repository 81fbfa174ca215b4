package terminal

import (
	"bufio"
	"bytes"
	"strconv"
)

// ANSI fragments; everything is emitted directly, no terminfo lookup
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM off: a write to the bottom-right cell must not scroll the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Kitty keyboard flags 1|2: disambiguate escape codes, report press/repeat/release
	// Unsupporting terminals ignore both
	csiKittyPush = []byte("\x1b[>3u")
	csiKittyPop  = []byte("\x1b[<u")

	sgrFg256 = []byte("38;5;")
	sgrBg256 = []byte("48;5;")
	sgrFgRGB = []byte("38;2;")
	sgrBgRGB = []byte("48;2;")
)

// Mode switch batches written by Init and on restore
// Autowrap is re-enabled after leaving the alternate screen so it applies to the main buffer
var (
	seqEnter = bytes.Join([][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiKittyPush}, nil)
	seqLeave = bytes.Join([][]byte{csiKittyPop, csiCursorShow, csiAltScreenExit, csiAutoWrapOn, csiSGR0}, nil)
)

// writeInt writes n in decimal into the writer's spare capacity; negatives clamp to 0
func writeInt(w *bufio.Writer, n int) {
	w.Write(strconv.AppendInt(w.AvailableBuffer(), int64(max(n, 0)), 10))
}

// writeCursorPos moves the cursor to 0-indexed (x, y)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward skips n columns; CUF defaults to 1 without a parameter
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	if n > 1 {
		writeInt(w, n)
	}
	w.WriteByte('C')
}
