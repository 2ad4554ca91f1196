package job

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	jobservice "github.com/thenoetrevino/etapa/internal/services/job"
)

// CreateCmd returns the job create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft job posting",
		Long: `Create a draft job posting. Drafts accept applications but are not listed publicly
until published.

Examples:
  # Create with a title only
  etapa job create --title "Platform Engineer"

  # Description from a markdown file
  etapa job create --title "Platform Engineer" --description-file role.md --location Remote

  # Quiet mode for bash capture
  JOB_ID=$(etapa job create --title "Platform Engineer" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Job title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("description", "", "Job description (markdown)")
	cmd.Flags().String("description-file", "", "Read the description from a file (- for stdin)")
	cmd.Flags().String("location", "", "Job location")

	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	org, err := cli.ResolveOrg(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	description, err := cli.ReadDescription(cmd)
	if err != nil {
		if fmtErr := formatter.Error("DATA_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return &cli.CommandError{Code: cli.ExitDataErr, Err: err}
	}

	title, _ := cmd.Flags().GetString("title")
	location, _ := cmd.Flags().GetString("location")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	created, err := cliInstance.App.JobService.CreateJob(ctx, jobservice.CreateJobRequest{
		OrgID:       org,
		Title:       title,
		Description: description,
		Location:    location,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(created)
	}

	fmt.Printf("✓ Created job '%s' (%s)\n", created.Title, created.ID)
	fmt.Printf("  Publish it with: etapa job publish %s\n", created.ID)
	return nil
}
