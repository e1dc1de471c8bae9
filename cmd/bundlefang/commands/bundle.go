// Package commands implements the bundlefang CLI subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/bundlefang/internal/config"
	"github.com/Sumatoshi-tech/bundlefang/pkg/bundler"
)

// outputFileMode is used for bundle artifacts written to disk.
const outputFileMode = 0o644

// NewBundleCommand creates the `bundle` command.
func NewBundleCommand() *cobra.Command {
	var output, configPath, basedir string

	var roots []string

	cmd := &cobra.Command{
		Use:   "bundle <file>",
		Short: "Inline local imports into a single self-contained source file",
		Long: `Bundle recursively inlines the bodies of all locally-resolvable
imported modules into the entry file, eliding redundant import statements.

Examples:
  bundlefang bundle main.py                  # bundle to stdout
  bundlefang bundle -o out.py main.py        # bundle to a file
  bundlefang bundle -r lib -r vendor main.py # extra search roots`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, args[0], output, configPath, basedir, roots)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&basedir, "basedir", "b", "", "base directory (default: the entry file's directory)")
	cmd.Flags().StringSliceVarP(&roots, "root", "r", nil, "additional search root, repeatable")

	return cmd
}

func runBundle(cmd *cobra.Command, entry, output, configPath, basedir string, roots []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	searchRoots := bundleSearchRoots(entry, basedir, roots, cfg)

	bnd, err := bundler.New(searchRoots)
	if err != nil {
		return err
	}

	blob, err := bnd.Bundle(cmd.Context(), entry)
	if err != nil {
		return fmt.Errorf("bundle %s: %w", entry, err)
	}

	if output != "" {
		if writeErr := os.WriteFile(output, blob, outputFileMode); writeErr != nil {
			return fmt.Errorf("write bundle: %w", writeErr)
		}

		return nil
	}

	_, err = cmd.OutOrStdout().Write(blob)

	return err
}

// bundleSearchRoots orders the roots: base directory first, then
// command-line roots, then configured roots.
func bundleSearchRoots(entry, basedir string, roots []string, cfg *config.Config) []string {
	if basedir == "" {
		basedir = filepath.Dir(entry)
	}

	searchRoots := make([]string, 0, 1+len(roots)+len(cfg.SearchRoots))
	searchRoots = append(searchRoots, basedir)
	searchRoots = append(searchRoots, roots...)
	searchRoots = append(searchRoots, cfg.SearchRoots...)

	return searchRoots
}
