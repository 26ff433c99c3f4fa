// Package cli wires configuration, the session core, and the presentation
// layer together for the cobra commands.
package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdice/tumbler/internal/config"
	"github.com/castdice/tumbler/internal/logging"
	"github.com/castdice/tumbler/internal/presentation/tui"
	"github.com/castdice/tumbler/pkg/domain"
	"github.com/castdice/tumbler/pkg/session"
)

// RunOptions contains the configuration for the interactive run command.
type RunOptions struct {
	ConfigPath     string
	ConfigExplicit bool
	Dice           int
	NoColor        bool
	Debug          bool
}

// events buffered deep enough that a full eight-die batch at 20 fps never
// stalls a spin goroutine behind a slow terminal.
const eventBuffer = 512

// Run starts the interactive TUI and blocks until the user quits.
func Run(opts RunOptions) error {
	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	cfg, err := config.Load(opts.ConfigPath, opts.ConfigExplicit)
	if err != nil {
		return err
	}
	if opts.Dice != 0 {
		if opts.Dice < domain.MinDice || opts.Dice > domain.MaxDice {
			return fmt.Errorf("%w: %d (want %d-%d)", domain.ErrCountOutOfRange, opts.Dice, domain.MinDice, domain.MaxDice)
		}
		cfg.Dice = opts.Dice
	}
	if opts.NoColor {
		cfg.NoColor = true
	}

	if !tui.IsTerminal() {
		return fmt.Errorf("interactive mode requires a terminal (try 'tumbler roll' for a one-shot roll)")
	}
	if warn := tui.SizeWarning(); warn != "" {
		logger.Warn(warn)
	}

	events := make(chan tea.Msg, eventBuffer)
	renderer, notifier := tui.NewEventBridge(events)

	sess, err := session.New(
		session.WithRenderer(renderer),
		session.WithNotifier(notifier),
		session.WithLogger(logger),
		session.WithDiceCount(cfg.Dice),
		session.WithFrameInterval(cfg.FrameInterval),
	)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer sess.Close()

	model := tui.NewModel(sess, events, cfg.NoColor)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}
