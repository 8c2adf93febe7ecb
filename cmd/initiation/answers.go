package main

import (
	"context"

	"github.com/spf13/cobra"

	"initiation/internal/gate"
)

func answersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Print the answer key (host diagnostic)",
		Args:  cobra.NoArgs,
		RunE:  runAnswers,
	}
	return cmd
}

func runAnswers(cmd *cobra.Command, args []string) error {
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

	key := session.AnswerKey()
	for id := 1; id <= gate.Count; id++ {
		cmd.Printf("Gate %d: %s\n", id, key[id])
	}
	return nil
}
