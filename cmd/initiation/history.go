package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"initiation/internal/gate"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <gate>",
		Short: "Print the attempt log for a gate",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistory,
	}
	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	gateID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parsing gate number: %w", err)
	}
	if _, ok := gate.ByID(gateID); !ok {
		return fmt.Errorf("gate must be between 1 and %d", gate.Count)
	}

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

	attempts := session.History(gateID)
	if len(attempts) == 0 {
		cmd.Println("No attempts.")
		return nil
	}
	for _, attempt := range attempts {
		verdict := "wrong"
		if attempt.Correct {
			verdict = "correct"
		}
		cmd.Printf("%s  %-8s %q\n", attempt.Timestamp.Format(time.RFC3339), verdict, attempt.Attempt)
	}
	return nil
}
