package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"initiation/internal/store"
)

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current progression state",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		return err
	}
	session, cleanup, err := openSession(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	snapshot := session.Snapshot()
	cmd.Printf("State: %s\n", session.State())
	if g, ok := session.Gate(); ok {
		cmd.Printf("Current gate: %d (%s)\n", g.ID, g.Title)
	}
	cmd.Printf("Completed: %s\n", completedGates(snapshot))
	cmd.Printf("Attempts: %d\n", totalAttempts(snapshot))
	return nil
}

func completedGates(snapshot store.Snapshot) string {
	if len(snapshot.CompletedGates) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(snapshot.CompletedGates))
	for _, id := range snapshot.CompletedGates {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

func totalAttempts(snapshot store.Snapshot) int {
	total := 0
	for _, attempts := range snapshot.Attempts {
		total += len(attempts)
	}
	return total
}
