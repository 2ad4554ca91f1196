package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/models"
	jobservice "github.com/thenoetrevino/etapa/internal/services/job"
	"github.com/thenoetrevino/etapa/internal/types"
)

// PublishCmd returns the job publish subcommand
func PublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <job-id>",
		Short: "Publish a job and create its pipeline",
		Long: `Publish a job. The job's pipeline columns are created from the configured
default stages first; if that fails the job stays unpublished.

Publishing an already published job is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: runPublish,
	}
}

// CloseCmd returns the job close subcommand
func CloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <job-id>",
		Short: "Close a job to new applications",
		Args:  cobra.ExactArgs(1),
		RunE:  runClose,
	}
}

// transitionFunc is PublishJob or CloseJob
type transitionFunc func(jobservice.Service, context.Context, types.OrgID, types.JobID) (*models.Job, error)

func runPublish(cmd *cobra.Command, args []string) error {
	return transition(cmd, types.JobID(args[0]), "Published", jobservice.Service.PublishJob)
}

func runClose(cmd *cobra.Command, args []string) error {
	return transition(cmd, types.JobID(args[0]), "Closed", jobservice.Service.CloseJob)
}

// transition runs publish or close and reports the result
func transition(cmd *cobra.Command, jobID types.JobID, verb string, apply transitionFunc) error {
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

	result, err := apply(cliInstance.App.JobService, ctx, org, jobID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(result)
	}

	fmt.Printf("✓ %s job '%s' (%s)\n", verb, result.Title, result.ID)
	return nil
}
