package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"initiation/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	var pin string
	var dsn string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new initiation project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName, pin, dsn)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "initiation", "Project name")
	cmd.Flags().StringVar(&pin, "pin", "7734", "Host PIN (change this)")
	cmd.Flags().StringVar(&dsn, "dsn", "bolt://initiation.db", "Storage DSN (bolt:// or sqlite://)")
	return cmd
}

func runInit(projectName, pin, dsn string) error {
	configPath := config.DefaultPath
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	contents := fmt.Sprintf("project: %s\nversion: 1\n\nhost:\n  pin: %q\n\nstorage:\n  dsn: %s\n", projectName, pin, dsn)
	if err := os.WriteFile(configPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	return nil
}
