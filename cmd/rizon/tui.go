package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rh-mithu/rizon-client/internal/logger"
	"github.com/rh-mithu/rizon-client/internal/tui"
)

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	if !stdoutIsTerminal() {
		return newCommandError("start the terminal UI", "rizon needs an interactive terminal", errNotTerminal,
			"Run rizon from a terminal, or use 'rizon request-link --email <addr>'")
	}

	app, err := newAppContext(flags, nil)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := logger.WithCorrelationID(cmd.Context(), logger.NewCorrelationID())
	log := app.Logger.WithContext(ctx).WithFields(map[string]any{"command": "tui"})
	log.Info("launching terminal UI")

	model := tui.NewApp(app.Session, tui.Options{
		Theme:       app.Theme,
		Logger:      log,
		Links:       app.Links,
		InitialLink: flags.link,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		log.Error(err, "terminal UI failed")
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}

	log.Info("terminal UI closed")
	return nil
}
