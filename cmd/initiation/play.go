package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"initiation/internal/tui"
)

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// The TUI owns the terminal; keep the logger quiet unless asked.
	logger := zap.NewNop()
	if debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	session, cleanup, err := openSession(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	program := tea.NewProgram(tui.New(ctx, session), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
