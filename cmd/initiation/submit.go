package main

import (
	"context"

	"github.com/spf13/cobra"
)

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <word>",
		Short: "Submit a word answer for the active gate",
		Args:  cobra.ExactArgs(1),
		RunE:  runSubmit,
	}
	return cmd
}

func runSubmit(cmd *cobra.Command, args []string) error {
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

	feedback, err := session.SubmitAnswer(ctx, args[0])
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
