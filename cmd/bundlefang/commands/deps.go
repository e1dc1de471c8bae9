package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/bundlefang/internal/config"
	"github.com/Sumatoshi-tech/bundlefang/pkg/depgraph"
	"github.com/Sumatoshi-tech/bundlefang/pkg/textutil"
)

// Dependency listing output formats.
const (
	formatPlain = "plain"
	formatTable = "table"
)

// ErrUnsupportedDepsFormat reports an unknown --format value.
var ErrUnsupportedDepsFormat = errors.New("unsupported format")

// NewDepsCommand creates the `deps` command.
func NewDepsCommand() *cobra.Command {
	var configPath, basedir, format string

	cmd := &cobra.Command{
		Use:   "deps <file>",
		Short: "List the transitive local dependencies of a file",
		Long: `Deps computes the complete transitive set of local files the entry
file imports, restricted to the base directory. The set always includes
the entry file itself; standard modules and package init files are
excluded.

Examples:
  bundlefang deps main.py              # one path per line
  bundlefang deps -f table main.py     # table with sizes and line counts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd, args[0], configPath, basedir, format)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&basedir, "basedir", "b", "", "base directory (default: the entry file's directory)")
	cmd.Flags().StringVarP(&format, "format", "f", formatPlain, "output format (plain, table)")

	return cmd
}

func runDeps(cmd *cobra.Command, entry, configPath, basedir, format string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if basedir == "" {
		basedir = filepath.Dir(entry)
	}

	builder, err := depgraph.New(cfg.DepGraph.Timeout, cfg.DepGraph.CacheSize)
	if err != nil {
		return err
	}

	deps, err := builder.ListDependencies(cmd.Context(), entry, basedir)
	if err != nil {
		return err
	}

	switch format {
	case formatPlain:
		for _, dep := range deps {
			fmt.Fprintln(cmd.OutOrStdout(), dep)
		}

		return nil
	case formatTable:
		return renderDepsTable(cmd, deps)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDepsFormat, format)
	}
}

func renderDepsTable(cmd *cobra.Command, deps []string) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.AppendHeader(table.Row{"File", "Lines", "Size"})

	for _, dep := range deps {
		raw, err := os.ReadFile(dep)
		if err != nil {
			return fmt.Errorf("read %s: %w", dep, err)
		}

		tbl.AppendRow(table.Row{
			dep,
			textutil.CountLines(raw),
			humanize.Bytes(uint64(len(raw))),
		})
	}

	tbl.Render()

	return nil
}
