package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/termgrid/input"
	"github.com/lixenwraith/termgrid/session"
	"github.com/lixenwraith/termgrid/terminal"
)

type runConfig struct {
	logger *log.Logger
	keys   *input.KeyTable
}

// Option configures Run
type Option func(*runConfig)

// WithLogger sets the debug logger; it must not write to the terminal owned by the session
func WithLogger(l *log.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithKeyTable replaces the default key bindings
func WithKeyTable(kt *input.KeyTable) Option {
	return func(c *runConfig) {
		if kt != nil {
			c.keys = kt
		}
	}
}

// Run drives m until it exits or the session fails
func Run(s session.Session, m Model, opts ...Option) error {
	cfg := runConfig{
		logger: log.New(io.Discard),
		keys:   input.DefaultKeyTable(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	for iter := 0; !m.Exited(); iter++ {
		if err := s.Draw(m.Render); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		ev, err := s.ReadEvent()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}

		cmd := cfg.keys.Translate(ev)
		if ev.Type == terminal.EventKey {
			cfg.logger.Debug("input", "iter", iter, "key", terminal.Describe(ev), "action", ev.Action, "command", cmd)
		} else {
			cfg.logger.Debug("event", "iter", iter, "type", ev.Type, "width", ev.Width, "height", ev.Height)
		}
		m.Handle(cmd)
	}

	cfg.logger.Debug("quit")
	return nil
}
