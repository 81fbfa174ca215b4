package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/termgrid/app"
	"github.com/lixenwraith/termgrid/board"
	"github.com/lixenwraith/termgrid/constants"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: constants.GridCursorName})

	cmd := app.NewCommand(constants.GridCursorName, "Move a highlighted cell around an 8x8 board",
		func() app.Model { return app.NewGridModel(board.DefaultPalette()) })

	// Runs after the terminal is restored
	if err := cmd.Execute(); err != nil {
		logger.Error("exited with error", "err", err)
		os.Exit(1)
	}
}
