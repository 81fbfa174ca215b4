package app

import (
	"fmt"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termgrid/session"
	"github.com/lixenwraith/termgrid/terminal"
)

type commandConfig struct {
	open   func() (session.Session, error)
	logger *log.Logger
}

// CommandOption configures NewCommand
type CommandOption func(*commandConfig)

// WithOpener replaces session.Open, used to run against a simulated screen
func WithOpener(open func() (session.Session, error)) CommandOption {
	return func(c *commandConfig) {
		c.open = open
	}
}

// WithDebugLogger passes l to Run for per-iteration debug logs
// Without it, debug logs are kept in memory and written to stderr when the run fails
func WithDebugLogger(l *log.Logger) CommandOption {
	return func(c *commandConfig) {
		c.logger = l
	}
}

// NewCommand builds the root command of a program; newModel is called once per execution
func NewCommand(use, short string, newModel func() Model, opts ...CommandOption) *cobra.Command {
	cfg := commandConfig{
		open: session.Open,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			tr := &trace{}
			logger := cfg.logger
			if logger == nil {
				logger = log.NewWithOptions(tr, log.Options{Level: log.DebugLevel, Prefix: use})
			}

			// Session.Close already ran during unwinding; this covers a panic inside Open
			defer func() {
				if r := recover(); r != nil {
					terminal.EmergencyReset(cmd.OutOrStdout())
					err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
				}
				if err != nil {
					_, _ = tr.WriteTo(cmd.ErrOrStderr())
				}
			}()

			return session.With(cfg.open, func(s session.Session) error {
				return Run(s, newModel(), WithLogger(logger))
			})
		},
	}
}
