package terminal

import (
	"os"
	"runtime"
	"strings"
)

// Variables exported only by terminals that render 24-bit SGR
var truecolorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
	"WT_SESSION",
}

// DetectColorMode determines color capability from the environment
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

func detectColorMode(getenv func(string) string) ColorMode {
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}

	for _, key := range truecolorEnv {
		if getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	for _, marker := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, marker) {
			return ColorModeTrueColor
		}
	}

	// Windows 10+ consoles accept 24-bit SGR
	if runtime.GOOS == "windows" {
		return ColorModeTrueColor
	}
	return ColorMode256
}
