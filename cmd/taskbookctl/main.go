package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskbook/api/cmd/taskbookctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "taskbookctl",
		Short: "Admin tool for the Taskbook API",
		Long:  "CLI tool for schema migration, account management, and session maintenance",
	}

	rootCmd.AddCommand(commands.NewMigrateCmd())
	rootCmd.AddCommand(commands.NewAddUserCmd())
	rootCmd.AddCommand(commands.NewSessionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
