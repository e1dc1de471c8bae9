package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/bundlefang/pkg/classify"
	"github.com/Sumatoshi-tech/bundlefang/pkg/textutil"
)

// File classification labels.
const (
	labelLibrary      = "library"
	labelVerification = "verification"
)

// NewScanCommand creates the `scan` command.
func NewScanCommand() *cobra.Command {
	var showLanguage bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Classify library and verification files under a directory",
		Long: `Scan walks a directory tree and reports every Python file that the
verification pipeline would treat as a library or as a runnable check.

Examples:
  bundlefang scan            # scan the current directory
  bundlefang scan lib -l     # include detected languages`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			return runScan(cmd, dir, showLanguage)
		},
	}

	cmd.Flags().BoolVarP(&showLanguage, "language", "l", false, "show the detected language of each file")

	return cmd
}

func runScan(cmd *cobra.Command, dir string, showLanguage bool) error {
	libraryColor := color.New(color.FgGreen)
	verificationColor := color.New(color.FgYellow)

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		label := ""

		switch {
		case classify.IsVerificationFile(path):
			label = verificationColor.Sprint(labelVerification)
		case classify.IsLibraryFile(path):
			label = libraryColor.Sprint(labelLibrary)
		default:
			return nil
		}

		if showLanguage {
			content, readErr := os.ReadFile(path)
			if readErr != nil {
				return readErr
			}

			if textutil.IsBinary(content) {
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%-13s %-10s %s\n", label, classify.Language(path, content), path)

			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", label, path)

		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("scan %s: %w", dir, walkErr)
	}

	return nil
}
