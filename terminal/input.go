package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventResize           // Width/Height carry the new size
	EventError            // Read error, see Err
	EventClosed           // Input reached EOF
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	}
	return "unknown"
}

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Action    KeyAction
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// maxCSILen bounds the scan for a CSI final byte; longer runs are swallowed
const maxCSILen = 32

// reader decodes backend input on its own goroutine
type reader struct {
	backend Backend
	events  chan Event
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once

	scratch [256]byte
	// Trailing partial sequence carried between reads
	pending []byte
}

// startReader launches the decode loop; close must be called to release it
func startReader(b Backend) *reader {
	r := &reader{
		backend: b,
		events:  make(chan Event, 64),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		pending: make([]byte, 0, 256),
	}
	go r.loop()
	return r
}

// close stops the loop and waits for it to exit
func (r *reader) close() {
	r.once.Do(func() {
		close(r.stop)
		r.backend.Wake()
		<-r.done
	})
}

func (r *reader) loop() {
	defer close(r.done)
	defer func() {
		if p := recover(); p != nil {
			r.emit(Event{Type: EventError, Err: fmt.Errorf("input decoder panic: %v", p)})
		}
	}()

	for {
		n, err := r.backend.Read(r.scratch[:], escapeTimeout)

		select {
		case <-r.stop:
			return
		default:
		}

		switch {
		case errors.Is(err, io.EOF):
			r.emit(Event{Type: EventClosed})
			return
		case err != nil:
			r.emit(Event{Type: EventError, Err: err})
			return
		case n == 0:
			// Timeout: whatever is still pending will not be completed
			r.pending = r.pending[:flushPending(r.pending, r.emit)]
		default:
			r.pending = append(r.pending, r.scratch[:n]...)
			used := parseInput(r.pending, r.emit)
			r.pending = r.pending[:copy(r.pending, r.pending[used:])]
		}
	}
}

// emit blocks until the event is taken or the reader is stopped
func (r *reader) emit(ev Event) {
	select {
	case r.events <- ev:
	case <-r.stop:
	}
}

// flushPending resolves a stalled buffer after the escape timeout
// A leading ESC becomes a standalone Escape key, invalid bytes are dropped
// Returns the remaining buffer length
func flushPending(buf []byte, emit func(Event)) int {
	for len(buf) > 0 {
		if buf[0] == 0x1b {
			emit(keyEvent(KeyEscape, ModNone))
		}
		buf = buf[1:]
		consumed := parseInput(buf, emit)
		buf = buf[consumed:]
	}
	return 0
}

// parseInput parses raw bytes into events and returns bytes consumed
// Stops at an incomplete trailing sequence
func parseInput(data []byte, emit func(Event)) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			// KeyNone marks a swallowed unknown sequence
			if ev.Key != KeyNone {
				emit(ev)
			}
			i += consumed

		case b < 0x20:
			emit(parseControl(b))
			i++

		case b == 0x7f:
			emit(keyEvent(KeyBackspace, ModNone))
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			if rn != utf8.RuneError || size > 1 {
				emit(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			}
			i += size
		}
	}
	return i
}

func keyEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Modifiers: mod}
}

// parseEscape parses a sequence starting with ESC, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch c := data[1]; {
	case c == 0x1b:
		return 2, keyEvent(KeyEscape, ModAlt)
	case c == '[':
		return parseCSI(data)
	case c == 'O':
		return parseSS3(data)
	case c < 0x20:
		ev := parseControl(c)
		ev.Modifiers |= ModAlt
		return 2, ev
	case c < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(c), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte: report Escape, the rest parses on its own
	return 1, keyEvent(KeyEscape, ModNone)
}

// parseCSI parses "ESC [ params final"
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// Linux console F1-F5: ESC [ [ X
	if data[2] == '[' {
		if len(data) < 4 {
			return 0, Event{}
		}
		if key, ok := linuxConsoleKeys[data[3]]; ok {
			return 4, keyEvent(key, ModNone)
		}
		return 4, Event{Type: EventKey}
	}

	maxScan := min(len(data), maxCSILen)
	end := 2
	for end < maxScan {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			return end + 1, decodeCSI(data[2:end], b)
		}
		if b < 0x20 || b > 0x3f {
			// Malformed: drop the prefix, the offending byte parses on its own
			return end, Event{Type: EventKey}
		}
		end++
	}

	if maxScan == maxCSILen {
		return maxScan, Event{Type: EventKey}
	}
	return 0, Event{}
}

// csiArgs holds the parameters this parser understands:
// "code[:alt...];mods[:event]"
type csiArgs struct {
	code    int
	mods    int
	event   int
	private bool
	ok      bool
}

func parseCSIArgs(b []byte) csiArgs {
	a := csiArgs{ok: true}
	param, sub := 0, 0
	val, have := 0, false

	store := func() {
		if !have {
			return
		}
		switch {
		case param == 0 && sub == 0:
			a.code = val
		case param == 1 && sub == 0:
			a.mods = val
		case param == 1 && sub == 1:
			a.event = val
		}
	}

	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
			val = val*10 + int(c-'0')
			if val > utf8.MaxRune {
				a.ok = false
				return a
			}
			have = true
		case c == ';':
			store()
			param++
			sub = 0
			val, have = 0, false
		case c == ':':
			store()
			sub++
			val, have = 0, false
		case c == '<' || c == '=' || c == '>' || c == '?':
			a.private = true
		default:
			a.ok = false
		}
	}
	store()
	return a
}

// decodeMods converts the xterm modifier parameter (1 + bitmask)
func decodeMods(p int) Modifier {
	if p <= 1 {
		return ModNone
	}
	return Modifier((p - 1) & int(ModShift|ModAlt|ModCtrl))
}

func decodeAction(p int) KeyAction {
	switch p {
	case 2:
		return ActionRepeat
	case 3:
		return ActionRelease
	}
	return ActionPress
}

// decodeCSI maps parsed parameters and final byte to an event
// Unknown sequences yield Key == KeyNone
func decodeCSI(params []byte, final byte) Event {
	a := parseCSIArgs(params)
	if !a.ok || a.private {
		return Event{Type: EventKey}
	}

	ev := Event{
		Type:      EventKey,
		Modifiers: decodeMods(a.mods),
		Action:    decodeAction(a.event),
	}

	switch final {
	case 'u':
		ev.Key, ev.Rune, ev.Modifiers = kittyKey(a.code, ev.Modifiers)
	case '~':
		ev.Key = csiTildeKeys[a.code]
	case 'Z':
		ev.Key = KeyBacktab
		ev.Modifiers |= ModShift
	default:
		ev.Key = csiFinalKeys[final]
	}
	return ev
}

// kittyKey resolves a kitty keyboard protocol codepoint
func kittyKey(code int, mod Modifier) (Key, rune, Modifier) {
	if key, ok := kittyKeys[code]; ok {
		return key, 0, mod
	}

	// Private use area carries functional keys (keypad, media) not handled here
	if code < 0x20 || (code >= 0xe000 && code <= 0xf8ff) || !utf8.ValidRune(rune(code)) {
		return KeyNone, 0, mod
	}

	r := rune(code)
	if mod&ModCtrl != 0 {
		if r == ' ' {
			return KeyCtrlSpace, 0, mod &^ ModCtrl
		}
		if k := ctrlLetter(r); k != KeyNone {
			return k, 0, mod &^ ModCtrl
		}
	}
	if mod&ModShift != 0 && r >= 'a' && r <= 'z' {
		return KeyRune, r - 'a' + 'A', mod &^ ModShift
	}
	return KeyRune, r, mod
}

// parseSS3 parses "ESC O X", returns length even for unknown sequences
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, ok := ss3Keys[data[2]]; ok {
		return 3, keyEvent(key, ModNone)
	}
	return 3, Event{Type: EventKey}
}

// parseControl maps C0 control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return keyEvent(KeyCtrlSpace, ModNone)
	case 0x08:
		return keyEvent(KeyBackspace, ModNone)
	case 0x09:
		return keyEvent(KeyTab, ModNone)
	case 0x0a, 0x0d:
		return keyEvent(KeyEnter, ModNone)
	case 0x1b:
		return keyEvent(KeyEscape, ModNone)
	case 0x1c:
		return keyEvent(KeyCtrlBackslash, ModNone)
	case 0x1d:
		return keyEvent(KeyCtrlBracketRight, ModNone)
	case 0x1e:
		return keyEvent(KeyCtrlCaret, ModNone)
	case 0x1f:
		return keyEvent(KeyCtrlUnderscore, ModNone)
	}
	if b >= 0x01 && b <= 0x1a {
		return keyEvent(KeyCtrlA+Key(b-1), ModNone)
	}
	return Event{Type: EventKey}
}
