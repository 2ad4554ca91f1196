package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

// EnsureCmd returns the pipeline ensure subcommand
func EnsureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Create the default pipeline if it does not exist",
		Long: `Create the configured default stages for a job, or for the organization-wide
pipeline, unless columns already exist. Existing columns are never changed.

Examples:
  etapa pipeline ensure --job 3f0c...
  etapa pipeline ensure --org-wide
`,
		Args: cobra.NoArgs,
		RunE: runEnsure,
	}

	cmd.Flags().String("job", "", "Job ID")
	cmd.Flags().Bool("org-wide", false, "Use the organization-wide pipeline")
	cmd.MarkFlagsOneRequired("job", "org-wide")
	cmd.MarkFlagsMutuallyExclusive("job", "org-wide")

	return cmd
}

func runEnsure(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	org, err := cli.ResolveOrg(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	jobID, _ := cmd.Flags().GetString("job")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	scope := models.OrgScope(org)
	if jobID != "" {
		if _, err := cliInstance.App.JobService.GetJob(ctx, org, types.JobID(jobID)); err != nil {
			return cli.Fail(formatter, err)
		}
		scope = models.JobScope(org, types.JobID(jobID))
	}

	columns, err := cliInstance.App.PipelineService.EnsureScopePipeline(ctx, scope)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, col := range columns {
			fmt.Println(col.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(columns)
	}

	fmt.Printf("Pipeline: %s\n", cli.FormatAvailableStages(columns))
	return nil
}
