package main

import (
	"context"

	"github.com/spf13/cobra"
)

func approveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <pin>",
		Short: "Approve the solved gate with the host PIN",
		Args:  cobra.ExactArgs(1),
		RunE:  runApprove,
	}
	return cmd
}

func runApprove(cmd *cobra.Command, args []string) error {
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

	if err := session.Approve(ctx, args[0]); err != nil {
		return err
	}

	snapshot := session.Snapshot()
	if snapshot.GameComplete {
		cmd.Println("All gates are complete.")
		return nil
	}
	cmd.Printf("Gate unlocked. Current gate: %d\n", snapshot.CurrentGate)
	return nil
}
