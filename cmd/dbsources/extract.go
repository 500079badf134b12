package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dbsources-go/internal/logging"
	"github.com/ukaji3/dbsources-go/pkg/dbsources"
	"github.com/ukaji3/dbsources-go/pkg/dbsources/output"
)

// extractOptions holds options for the extract command.
type extractOptions struct {
	outputPath string
	outputDir  string
	preview    string
}

func newExtractCommand() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract data sources from a workbook into a new workbook",
		Example: `  # Write report_datasources.xlsx next to the input
  dbsources extract report.xlsx

  # Two-column output, JSON preview, explicit output path
  dbsources extract report.xlsx --format columns --preview json -o sources.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: <input>_datasources.xlsx)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for the default output file (default: input directory)")
	cmd.Flags().StringVar(&opts.preview, "preview", output.PreviewTable, "Preview format: table, json, csv, markdown, none")

	_ = cmd.RegisterFlagCompletionFunc("preview", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{output.PreviewTable, output.PreviewJSON, output.PreviewCSV, output.PreviewMarkdown, output.PreviewNone},
			cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExtract(cmd *cobra.Command, inputPath string, opts *extractOptions) error {
	cfg := getConfig(cmd.Context())
	logger := logging.FromContext(cmd.Context())

	logger.Debug("extracting data sources", "input", inputPath, "sheet", cfg.Sheet, "column", cfg.Column, "format", cfg.Format)

	table, err := dbsources.ExtractFile(inputPath, cfg.Options())
	if errors.Is(err, dbsources.ErrNoDataSources) {
		fmt.Fprintln(cmd.OutOrStdout(), dbsources.UserMessage(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := output.Render(cmd.OutOrStdout(), table, opts.preview); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	outPath := opts.outputPath
	if outPath == "" {
		dir := opts.outputDir
		if dir == "" {
			dir = filepath.Dir(inputPath)
		}
		outPath = filepath.Join(dir, table.FileName)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := output.WriteXLSX(f, table); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("wrote data sources", "path", outPath, "rows", table.Len(), "sheet", table.SheetName)
	return nil
}
