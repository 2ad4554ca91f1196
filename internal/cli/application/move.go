package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/models"
	appservice "github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
	"github.com/thenoetrevino/etapa/internal/types"
)

// MoveCmd returns the application move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <application-id> [stage]",
		Short: "Move an application to another stage",
		Long: `Move an application to another stage of its job's pipeline, by stage name
(case-insensitive) or by column ID.

Examples:
  etapa application move 9a1b... Interview
  etapa application move 9a1b... --column 77d2...
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runMove,
	}

	cmd.Flags().String("column", "", "Destination column ID")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	org, err := cli.ResolveOrg(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	req := appservice.MoveRequest{OrgID: org}
	column, _ := cmd.Flags().GetString("column")
	req.ColumnID = types.ColumnID(column)
	if len(args) == 2 {
		req.Stage = args[1]
	}
	id := types.ApplicationID(args[0])

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	before, err := cliInstance.App.ApplicationService.GetApplication(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if before.OrgID != org {
		return cli.Fail(formatter, appservice.ErrApplicationNotFound)
	}

	moved, err := cliInstance.App.ApplicationService.MoveJobCandidate(ctx, id, req)
	if errors.Is(err, pipeline.ErrUnknownStage) {
		return cli.FailWithSuggestion(formatter, err, availableStages(cmd, cliInstance, before))
	}
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(moved)
	}

	if before.ColumnID == moved.ColumnID {
		fmt.Printf("Application %s is already in '%s'\n", moved.ID, moved.Stage)
	} else {
		fmt.Printf("Application %s moved from '%s' to '%s'\n", moved.ID, before.Stage, moved.Stage)
	}
	return nil
}

// availableStages lists the stages an application can move to
func availableStages(cmd *cobra.Command, c *cli.CLI, jc *models.JobCandidate) string {
	columns, err := c.App.PipelineService.GetColumns(cmd.Context(), jc.JobID, jc.OrgID)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Currently in: %s\nAvailable stages: %s", jc.Stage, cli.FormatAvailableStages(columns))
}
