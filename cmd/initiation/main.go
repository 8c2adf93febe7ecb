package main

import (
	"os"

	"github.com/spf13/cobra"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:   "initiation",
		Short: "Single-player gate progression puzzle with host approval",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.AddCommand(initCmd())
	root.AddCommand(playCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(submitCmd())
	root.AddCommand(assembleCmd())
	root.AddCommand(approveCmd())
	root.AddCommand(resetCmd())
	root.AddCommand(answersCmd())
	root.AddCommand(historyCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
