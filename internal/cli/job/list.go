package job

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
)

// ListCmd returns the job list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the organization's jobs",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
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

	jobs, err := cliInstance.App.JobService.ListJobs(ctx, org)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, j := range jobs {
			fmt.Println(j.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(jobs)
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs yet. Create one with: etapa job create --title <title>")
		return nil
	}

	for _, j := range jobs {
		fmt.Printf("%s  %s  %s\n", j.ID, styles.StatusBadge(j.Status), styles.TitleStyle.Render(j.Title))
	}
	return nil
}
