// Package main provides the entry point for the weatherscan CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Inouye165/parsing-weather-data-duke/cmd/weatherscan/commands"
	"github.com/Inouye165/parsing-weather-data-duke/internal/config"
	"github.com/Inouye165/parsing-weather-data-duke/internal/logging"
)

const appName = "weatherscan"

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "weatherscan",
		Short: "Weatherscan - aggregate facts from weather observation CSVs",
		Long: `Weatherscan scans CSV weather observation files and reports aggregate facts.

Commands:
  coldest          Coldest valid temperature reading across the input files
  coldest-file     File containing the overall coldest reading, with its full listing
  lowest-humidity  Lowest valid humidity reading across the input files
  average          Per-file average temperature, optionally humidity-filtered
  archive          Store raw observations in the SQLite archive`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.NewColdestCommand(cfg),
		commands.NewColdestFileCommand(cfg),
		commands.NewLowestHumidityCommand(cfg),
		commands.NewAverageCommand(cfg),
		commands.NewArchiveCommand(cfg),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "%s %s\n", appName, version)
		},
	}
}
