package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/etapa/internal/config/colors"
	"github.com/thenoetrevino/etapa/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board styles
	ColumnStyle      lipgloss.Style
	ColumnTitleStyle lipgloss.Style
	ApplicantStyle   lipgloss.Style
	ColumnWidth      = 24

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Location:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	ColumnTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ColumnTitle))

	ApplicantStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Foreground(lipgloss.Color(scheme.Normal)).
		PaddingLeft(1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Warning))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusBadge renders a job status in its color
func StatusBadge(status models.JobStatus) string {
	switch status {
	case models.JobStatusPublished:
		return SuccessStyle.Render(string(status))
	case models.JobStatusClosed:
		return ErrorStyle.Render(string(status))
	default:
		return WarningStyle.Render(string(status))
	}
}

// Field renders a "Label: value" line
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderBoard lays the columns out side by side with each column's applicants
// listed under its title
func RenderBoard(columns []*models.PipelineColumn, apps []*models.ApplicationSummary) string {
	byColumn := make(map[string][]*models.ApplicationSummary, len(columns))
	for _, a := range apps {
		byColumn[string(a.ColumnID)] = append(byColumn[string(a.ColumnID)], a)
	}

	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		members := byColumn[string(col.ID)]

		var body strings.Builder
		body.WriteString(ColumnTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(members))))
		if len(members) == 0 {
			body.WriteString("\n" + SubtitleStyle.Render("empty"))
		}
		for _, m := range members {
			body.WriteString("\n" + ApplicantStyle.Render(applicantLabel(m)))
		}
		rendered = append(rendered, ColumnStyle.Render(body.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func applicantLabel(a *models.ApplicationSummary) string {
	if a.CandidateName != "" {
		return a.CandidateName + "\n" + SubtitleStyle.Render(a.CandidateEmail)
	}
	return a.CandidateEmail
}
