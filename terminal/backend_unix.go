//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyBackend drives the controlling terminal through stdin/stdout
// A self-pipe lets Wake interrupt poll without waiting for the timeout
type ttyBackend struct {
	in, out *os.File
	inFd    int
	saved   *term.State

	wakeR, wakeW int
	winch        chan os.Signal
}

func newBackend() Backend {
	return &ttyBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		wakeR: -1,
		wakeW: -1,
	}
}

func (b *ttyBackend) Open() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	var pipe [2]int
	if err := unix.Pipe(pipe[:]); err != nil {
		return fmt.Errorf("wake pipe: %w", err)
	}

	saved, err := term.MakeRaw(b.inFd)
	if err != nil {
		unix.Close(pipe[0])
		unix.Close(pipe[1])
		return fmt.Errorf("raw mode: %w", err)
	}

	b.saved = saved
	b.wakeR, b.wakeW = pipe[0], pipe[1]

	// Buffer of one coalesces signal bursts
	b.winch = make(chan os.Signal, 1)
	signal.Notify(b.winch, unix.SIGWINCH)
	return nil
}

func (b *ttyBackend) Close() {
	if b.winch != nil {
		signal.Stop(b.winch)
	}
	if b.saved != nil {
		term.Restore(b.inFd, b.saved)
		b.saved = nil
	}
	if b.wakeR >= 0 {
		unix.Close(b.wakeR)
		unix.Close(b.wakeW)
		b.wakeR, b.wakeW = -1, -1
	}
}

func (b *ttyBackend) Size() (int, int) {
	return windowSize(int(b.out.Fd()))
}

func (b *ttyBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *ttyBackend) Read(p []byte, timeout time.Duration) (int, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
		{Fd: int32(b.wakeR), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, int(timeout.Milliseconds()))
		switch {
		case err == unix.EINTR:
			// SIGWINCH lands here
			continue
		case err != nil:
			return 0, fmt.Errorf("poll: %w", err)
		case n == 0:
			return 0, nil
		}

		if fds[1].Revents != 0 {
			var drain [8]byte
			unix.Read(b.wakeR, drain[:])
			return 0, nil
		}

		rn, err := unix.Read(b.inFd, p)
		switch {
		case err == unix.EINTR || err == unix.EAGAIN:
			continue
		case err != nil:
			return 0, fmt.Errorf("read: %w", err)
		case rn == 0:
			return 0, io.EOF
		}
		return rn, nil
	}
}

func (b *ttyBackend) Wake() {
	if b.wakeW >= 0 {
		unix.Write(b.wakeW, []byte{0})
	}
}

func (b *ttyBackend) Resized() <-chan os.Signal {
	return b.winch
}

// windowSize falls back to 80x24 when the ioctl fails or reports zero
func windowSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
