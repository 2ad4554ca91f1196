package application

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	appservice "github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/types"
)

// ApplyCmd returns the application apply subcommand
func ApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Submit an application to a job",
		Long: `Submit an application on behalf of a candidate. The candidate is matched by
email within the job's organization and placed in the first stage of the job's
pipeline. No organization is needed; the job determines it.

Examples:
  etapa application apply 3f0c... --email ada@example.com --first-name Ada

  # JSON output for agents
  etapa application apply 3f0c... --email ada@example.com --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runApply,
	}

	cmd.Flags().String("email", "", "Candidate email (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("first-name", "", "Candidate first name")
	cmd.Flags().String("last-name", "", "Candidate last name")
	cmd.Flags().String("phone", "", "Candidate phone number")
	cmd.Flags().String("resume-url", "", "Link to the candidate's resume")
	cmd.Flags().String("notes", "", "Notes attached to the application")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	flags := cmd.Flags()
	req := appservice.ApplyRequest{}
	req.Email, _ = flags.GetString("email")
	req.FirstName, _ = flags.GetString("first-name")
	req.LastName, _ = flags.GetString("last-name")
	req.Phone, _ = flags.GetString("phone")
	req.ResumeURL, _ = flags.GetString("resume-url")
	req.Notes, _ = flags.GetString("notes")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	result, err := cliInstance.App.ApplicationService.Apply(ctx, types.JobID(args[0]), req)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(result)
	}

	fmt.Printf("✓ Application %s created for %s\n", result.ApplicationID, req.Email)
	return nil
}
