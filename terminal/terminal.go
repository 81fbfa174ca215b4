package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	// ErrUnsupported is returned by Init on platforms without a native backend
	ErrUnsupported = errors.New("terminal: native backend not supported on this platform")

	// ErrNotTerminal is returned by Init when stdin is not attached to a tty
	ErrNotTerminal = errors.New("terminal: stdin is not a terminal")
)

// Terminal is a raw-mode, alternate-screen view of the controlling tty
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor and starts input decoding
	Init() error

	// Fini undoes Init; safe to call more than once
	Fini()

	Size() (width, height int)

	ColorMode() ColorMode

	// Flush diffs a row-major frame (cells[y*width+x]) against the previous one and writes the changes
	// A frame whose size no longer matches the terminal is dropped
	Flush(cells []Cell, width, height int) error

	// PollEvent blocks until the next event
	PollEvent() Event

	// PostEvent queues a synthetic event ahead of input; dropped when the queue is full
	PostEvent(Event)
}

type termImpl struct {
	backend Backend
	output  *outputBuffer
	input   *reader
	posted  chan Event

	mu    sync.Mutex
	state termState
}

type termState uint8

const (
	stateNew termState = iota
	stateActive
	stateDone
)

// New returns a terminal over the platform backend; colorMode overrides detection
func New(colorMode ...ColorMode) Terminal {
	return newTerminal(newBackend(), colorMode...)
}

func newTerminal(b Backend, colorMode ...ColorMode) *termImpl {
	mode := DetectColorMode()
	if len(colorMode) > 0 {
		mode = colorMode[0]
	}
	t := &termImpl{
		backend: b,
		posted:  make(chan Event, 16),
	}
	t.output = newOutputBuffer(writerFunc(b.Write), mode)
	return t
}

// writerFunc adapts an error-only write to io.Writer
type writerFunc func(p []byte) error

func (f writerFunc) Write(p []byte) (int, error) {
	if err := f(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateNew {
		return nil
	}

	if err := t.backend.Open(); err != nil {
		return err
	}

	if err := t.backend.Write(seqEnter); err != nil {
		t.leave()
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	t.output.resize(t.backend.Size())
	if err := t.output.clear(RGBBlack); err != nil {
		t.leave()
		return fmt.Errorf("clear screen: %w", err)
	}

	t.input = startReader(t.backend)
	t.state = stateActive
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateActive {
		return
	}
	t.input.close()
	t.leave()
	t.state = stateDone
}

// leave restores modes and the saved tty state; write errors are ignored
func (t *termImpl) leave() {
	t.backend.Write(seqLeave)
	t.backend.Close()
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

func (t *termImpl) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateActive {
		return nil
	}
	// The pending resize event triggers a frame at the new size
	if w, h := t.backend.Size(); w != width || h != height {
		return nil
	}
	return t.output.flush(cells, width, height)
}

func (t *termImpl) PollEvent() Event {
	if t.input == nil {
		return Event{Type: EventClosed}
	}

	select {
	case ev := <-t.posted:
		return ev
	default:
	}

	select {
	case ev := <-t.posted:
		return ev
	case ev := <-t.input.events:
		return ev
	case <-t.backend.Resized():
		w, h := t.backend.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	}
}

func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.posted <- ev:
	default:
	}
}

// EmergencyReset restores the terminal from a panic handler where Fini cannot run
func EmergencyReset(w io.Writer) {
	w.Write(seqLeave)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	// Escape sequences alone leave the tty in raw mode
	resetTerminalMode()
}
