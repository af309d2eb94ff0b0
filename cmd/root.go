package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stefa-ie/buecheria-library-app/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "buecheria",
	Short: "Buecheria library backend",
	Long: `Buecheria library backend: REST API for authors, books, members and loans.

Commands:
  serve         - Run the HTTP API
  migrate       - Apply or roll back the database schema
  user create   - Create a login account`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(envFile)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
