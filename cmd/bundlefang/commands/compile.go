package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/bundlefang/internal/config"
	"github.com/Sumatoshi-tech/bundlefang/pkg/launcher"
)

// NewCompileCommand creates the `compile` command.
func NewCompileCommand() *cobra.Command {
	var configPath, basedir, tempdir string

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Write the launcher script for a target file",
		Long: `Compile writes a helper script that runs the target with the base
directory prepended to PYTHONPATH and prints the command to execute it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], configPath, basedir, tempdir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&basedir, "basedir", "b", "", "base directory (default: the target file's directory)")
	cmd.Flags().StringVarP(&tempdir, "tempdir", "t", "", "directory for the launcher script (default: a fresh temp directory)")

	return cmd
}

func runCompile(cmd *cobra.Command, target, configPath, basedir, tempdir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if basedir == "" {
		basedir = filepath.Dir(target)
	}

	if tempdir == "" {
		tempdir, err = os.MkdirTemp("", "bundlefang-")
		if err != nil {
			return fmt.Errorf("create temp directory: %w", err)
		}
	}

	env := launcher.Environment{Python: cfg.Python.Executable}

	scriptPath, err := env.Compile(target, basedir, tempdir)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), scriptPath)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(env.ExecuteCommand(tempdir), " "))

	return nil
}
