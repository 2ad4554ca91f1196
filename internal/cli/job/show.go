package job

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/cli/styles"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

// ShowCmd returns the job show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show job details",
		Long:  "Display a job with its description rendered as markdown.",
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

	found, err := cliInstance.App.JobService.GetJob(ctx, org, types.JobID(args[0]))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(found)
	}

	styles.Init(cliInstance.Config.Theme)
	fmt.Println(styles.RenderCard(renderJob(found)))
	return nil
}

func renderJob(j *models.Job) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(j.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(string(j.ID)))
	content.WriteString("\n\n")

	content.WriteString(styles.LabelStyle.Render("Status:") + " " + styles.StatusBadge(j.Status) + "\n")
	if j.Location != "" {
		content.WriteString(styles.Field("Location", j.Location) + "\n")
	}
	if j.PublishedAt != nil {
		content.WriteString(styles.Field("Published", j.PublishedAt.Format("2006-01-02 15:04")) + "\n")
	}
	content.WriteString(styles.Field("Created", j.CreatedAt.Format("2006-01-02 15:04")) + "\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(styles.RenderMarkdown(j.Description, styles.CardWidth-6))

	return content.String()
}
