// Package main is the entry point for the Tourdesk backend.
// Its sole responsibility is wiring dependencies together behind the
// serve, migrate and emphasize commands. No business logic belongs here.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "tourdesk",
	Short:         "Tour catalogue backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "load environment variables from this file instead of .env")
	rootCmd.AddCommand(serveCmd, migrateCmd, emphasizeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Use plain stderr; the command may have failed before a logger existed.
		slog.Error("tourdesk", "error", err)
		os.Exit(1)
	}
}

// envFiles returns the --env-file value as the argument list the config
// loaders expect. Empty means the default .env, which may be absent.
func envFiles(cmd *cobra.Command) []string {
	f, _ := cmd.Flags().GetString("env-file")
	if f == "" {
		return nil
	}
	return []string{f}
}

// newLogger builds the JSON slog logger used by every command.
// An unknown level falls back to info.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
