package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/termgrid/app"
	"github.com/lixenwraith/termgrid/constants"
	"github.com/lixenwraith/termgrid/panels"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: constants.QuadrantsName})

	cmd := app.NewCommand(constants.QuadrantsName, "Show a static four-panel layout",
		func() app.Model { return app.NewQuadrantsModel(panels.DefaultTheme) })

	if err := cmd.Execute(); err != nil {
		logger.Error("exited with error", "err", err)
		os.Exit(1)
	}
}
