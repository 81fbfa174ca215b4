package input

// Command is the semantic action an input event maps to
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandLeft
	CommandRight
	CommandUp
	CommandDown
)

var commandNames = [...]string{
	CommandNone:  "none",
	CommandQuit:  "quit",
	CommandLeft:  "left",
	CommandRight: "right",
	CommandUp:    "up",
	CommandDown:  "down",
}

// String returns the command name for debug logs
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}
