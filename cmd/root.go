package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/application"
	"github.com/thenoetrevino/etapa/internal/cli/job"
	"github.com/thenoetrevino/etapa/internal/cli/pipeline"
	"github.com/thenoetrevino/etapa/internal/cli/serve"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/logging"
)

// NewRootCmd builds the etapa command tree
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "etapa",
		Short: "Etapa - hiring pipelines for job postings",
		Long: `Etapa tracks candidates through per-job hiring pipelines.

Run 'etapa serve' for the HTTP API, or use the job, pipeline and application
commands against the same database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return cli.Fail(cli.Formatter(cmd), fmt.Errorf("invalid configuration: %w", err))
			}

			logCloser, err = logging.Init(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			styles.Init(cfg.Theme)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(cli.WithConfig(ctx, cfg))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logCloser == nil {
				return
			}
			if err := logCloser.Close(); err != nil {
				slog.Error("failed to close log file", "error", err)
			}
		},
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(job.JobCmd())
	rootCmd.AddCommand(pipeline.PipelineCmd())
	rootCmd.AddCommand(application.ApplicationCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
