package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dbsources-go/internal/logging"
	"github.com/ukaji3/dbsources-go/internal/ui"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web upload UI",
		Long: `Start a local web server where an Excel export can be uploaded,
previewed, and downloaded as a data-source workbook.`,
		Example: `  # Start on the default port
  dbsources serve

  # Start on a custom port with a 50 MB upload limit
  dbsources serve --port 3000 --max-upload-mb 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().Int("port", 0, "Port to serve on (default: 8501)")
	cmd.Flags().Int("max-upload-mb", 0, "Maximum upload size in megabytes (default: 200)")
	cmd.Flags().Int("preview-limit", 0, "Maximum rows shown in the preview (default: 500)")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	cfg := getConfig(cmd.Context())
	logger := logging.FromContext(cmd.Context())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := ui.NewServer(ui.Config{
		Options:        cfg.Options(),
		Port:           cfg.UI.Port,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		PreviewLimit:   cfg.UI.PreviewLimit,
		Logger:         logger,
	})

	return server.Serve(ctx)
}
