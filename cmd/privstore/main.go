package main

import (
	"os"

	"github.com/spf13/cobra"

	"privstore/internal/interfaces/cli/migrate"
	"privstore/internal/interfaces/cli/server"
	"privstore/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "privstore",
		Short:   "Privstore - game server privilege store",
		Long:    `Privstore sells game server privileges: players sign in with Steam and submit purchase requests, admins approve or reject them.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
