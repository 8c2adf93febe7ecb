package main

import (
	"context"

	"github.com/spf13/cobra"

	"initiation/internal/gate"
)

func assembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble <tile>...",
		Short: "Submit a tile arrangement for the assembly gate",
		Long:  "Submit up to nine tiles as the assembly gate arrangement. Slot order does not matter.",
		Args:  cobra.RangeArgs(1, gate.BoardSlots),
		RunE:  runAssemble,
	}
	return cmd
}

func runAssemble(cmd *cobra.Command, args []string) error {
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

	feedback, err := session.SubmitAssembly(ctx, args)
	if err != nil {
		return err
	}
	if err := session.CommitClear(ctx); err != nil {
		return err
	}

	cmd.Println(feedback.Message)
	if feedback.Correct {
		cmd.Println("The gate is solved. Await approval.")
	}
	return nil
}
