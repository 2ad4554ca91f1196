package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/api"
	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/database"
	"github.com/thenoetrevino/etapa/internal/events"
	"golang.org/x/sync/errgroup"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API and the live-update event broker until interrupted.

Examples:
  # Listen on the configured address (server.addr, default :8080)
  etapa serve

  # Override the address
  etapa serve --addr 127.0.0.1:9090
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := cli.ConfigFromContext(cmd.Context())
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, cfg)
}

// Run serves until ctx is cancelled or either component fails
func Run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(gin.ReleaseMode)

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	broker := events.NewBroker(cfg.Events.BroadcastBuffer, cfg.Events.ClientBuffer)
	application := app.New(db,
		app.WithEventPublisher(broker),
		app.WithPipelineConfig(cli.PipelineConfig(cfg)),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	server := api.NewServer(application, broker, cfg.Server)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return broker.Start(gctx)
	})
	g.Go(func() error {
		return server.Run(gctx)
	})

	slog.Info("etapa serving",
		"addr", cfg.Server.Addr,
		"db", cfg.Database.Path,
		"stages", cfg.Pipeline.DefaultStages)

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("etapa stopped")
	return nil
}
