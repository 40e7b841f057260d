package main

import (
	"os"

	"github.com/spf13/cobra"

	"kontor/internal/interfaces/cli/migrate"
	"kontor/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kontor",
		Short: "Kontor - business operations portal",
		Long:  `Kontor manages customers, projects, tasks and tickets with role-based access for staff and customer users.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
