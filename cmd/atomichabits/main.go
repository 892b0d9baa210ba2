package main

import (
	"os"

	"github.com/spf13/cobra"

	"atomichabits/internal/interfaces/cli/bot"
	"atomichabits/internal/interfaces/cli/migrate"
	"atomichabits/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomichabits",
		Short: "AtomicHabits - habit tracking backend",
		Long:  `AtomicHabits is a habit tracking backend with a JSON API, a Telegram bot for reminders, and database migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
