package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all progression state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset is destructive; pass --yes to confirm")
			}
			return runReset(cmd)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func runReset(cmd *cobra.Command) error {
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

	if err := session.Reset(ctx); err != nil {
		return err
	}
	cmd.Println("Progress reset.")
	return nil
}
