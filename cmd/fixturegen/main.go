package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixturegen/fixturegen/cmd/fixturegen/commands"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Random fixture file generator",
		Long: `fixturegen generates test fixture files of random content: raw binary
files of an exact byte size, or valid 24-bit BMP images of requested pixel
dimensions filled with random pixel data.

It is meant for load testing, storage benchmarking, and image-pipeline
testing where synthetic data of a known shape is needed.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: $HOME/.fixturegen/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(commands.NewRawCommand())
	rootCmd.AddCommand(commands.NewBMPCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildTime, GitCommit))

	return rootCmd
}
