// Package terminal drives an xterm-compatible tty directly with ANSI sequences.
//
// Init switches to raw mode and the alternate screen and pushes kitty keyboard
// flags so key releases and repeats are reported and can be filtered. Input is
// decoded on a background goroutine into Events; output is a row-major Cell
// frame, diffed against the previous frame on Flush and written as truecolor or
// 256-color SGR. Fini and EmergencyReset put the tty back the way it was.
//
// Only unix platforms have a backend; elsewhere Init returns ErrUnsupported.
package terminal
