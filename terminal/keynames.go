package terminal

import "strings"

// keyNames is indexed by Key; Ctrl letters are filled in by init
var keyNames = [...]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyInsert:    "insert",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4",
	KeyF5: "f5", KeyF6: "f6", KeyF7: "f7", KeyF8: "f8",
	KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

func init() {
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		keyNames[k] = "ctrl_" + string(rune('a'+k-KeyCtrlA))
	}
}

// String returns the snake_case key name, "unknown" outside the defined range
func (k Key) String() string {
	if int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return "unknown"
}

// KeyName returns the name of a special key; empty for KeyNone, KeyRune and undefined values
func KeyName(k Key) string {
	if k == KeyNone || k == KeyRune || int(k) >= len(keyNames) {
		return ""
	}
	return keyNames[k]
}

// Describe formats a key event for debug logs, e.g. "ctrl+alt+up" or "q"
func Describe(ev Event) string {
	parts := make([]string, 0, 4)
	for _, m := range [...]struct {
		bit  Modifier
		name string
	}{{ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModShift, "shift"}} {
		if ev.Modifiers&m.bit != 0 {
			parts = append(parts, m.name)
		}
	}

	switch ev.Key {
	case KeyRune:
		parts = append(parts, string(ev.Rune))
	default:
		parts = append(parts, ev.Key.String())
	}
	return strings.Join(parts, "+")
}
