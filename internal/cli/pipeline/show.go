package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/types"
)

// ShowCmd returns the pipeline show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a job's board",
		Long:  "Render the job's pipeline columns with the applications in each stage.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	org, err := cli.ResolveOrg(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	board, err := cliInstance.App.ApplicationService.GetBoard(ctx, org, types.JobID(args[0]))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, a := range board.Applications {
			fmt.Println(a.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(board)
	}

	styles.Init(cliInstance.Config.Theme)
	fmt.Println(styles.RenderBoard(board.Columns, board.Applications))
	return nil
}
