// Package main provides the CLI entry point for dbsources.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dbsources-go/internal/config"
	"github.com/ukaji3/dbsources-go/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var cfgFile string

// configKey is used to store config in context.
type configKey struct{}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbsources",
		Short: "Extract Databricks data sources from Excel expression exports",
		Long: `dbsources reads the "Expression" column of the "Expressions" sheet,
extracts the schema and table/view name referenced by every Databricks
expression, removes duplicates, and writes the result to a new workbook.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.Level())
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./dbsources.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("sheet", "", "Sheet holding the expressions (default: Expressions)")
	rootCmd.PersistentFlags().String("column", "", "Header of the expression column (default: Expression)")
	rootCmd.PersistentFlags().String("marker", "", "Only rows containing this text are processed (default: Databricks)")
	rootCmd.PersistentFlags().String("format", "", "Output format: combined or columns (default: combined)")
	rootCmd.PersistentFlags().Bool("no-views", false, "Ignore View names and report Table names only")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"combined", "columns"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	cfg, _, err := config.Load("", nil)
	if err != nil {
		return &config.Config{}
	}
	return cfg
}
