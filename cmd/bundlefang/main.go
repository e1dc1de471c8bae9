// Package main provides the entry point for the bundlefang CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/bundlefang/cmd/bundlefang/commands"
	"github.com/Sumatoshi-tech/bundlefang/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bundlefang",
		Short: "Bundlefang - dependency-aware Python source bundler",
		Long: `Bundlefang bundles a Python entry file and its locally-resolvable
imports into one self-contained source file, and computes the transitive
dependency set used for change tracking.

Commands:
  bundle    Inline local imports into a single source file
  deps      List the transitive local dependencies of a file
  scan      Classify library and verification files under a directory
  compile   Write the launcher script for a target file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewBundleCommand())
	rootCmd.AddCommand(commands.NewDepsCommand())
	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configureLogging() {
	switch {
	case quiet:
		slog.SetLogLoggerLevel(slog.LevelError)
	case verbose:
		slog.SetLogLoggerLevel(slog.LevelDebug)
	default:
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "bundlefang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
