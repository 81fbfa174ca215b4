package input

import (
	"github.com/lixenwraith/termgrid/constants"
	"github.com/lixenwraith/termgrid/terminal"
)

// KeyTable maps keys to commands
// Modifiers are not part of the lookup: Shift+Left is still Left
type KeyTable struct {
	// Non-rune keys (arrows)
	SpecialKeys map[terminal.Key]Command

	// Printable rune bindings, matched exactly ('q' but not 'Q')
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Command{
			terminal.KeyLeft:  CommandLeft,
			terminal.KeyRight: CommandRight,
			terminal.KeyUp:    CommandUp,
			terminal.KeyDown:  CommandDown,
		},
		Runes: map[rune]Command{
			constants.QuitRune: CommandQuit,
		},
	}
}

// Translate maps an event to a command
// Non-key events and key repeat/release events yield CommandNone
func (kt *KeyTable) Translate(ev terminal.Event) Command {
	if ev.Type != terminal.EventKey || ev.Action != terminal.ActionPress {
		return CommandNone
	}
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.SpecialKeys[ev.Key]
}
