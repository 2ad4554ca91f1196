package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/services/job"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
	"github.com/thenoetrevino/etapa/internal/types"
)

// OrgEnv names the environment variable used when --org is not given
const OrgEnv = "ETAPA_ORG"

// ErrMissingOrg is returned when neither --org nor ETAPA_ORG is set
var ErrMissingOrg = errors.New("organization is required (use --org or set " + OrgEnv + ")")

// errorClass pairs a domain error with a CLI error code and exit code
type errorClass struct {
	err  error
	code string
	exit int
}

var errorClasses = []errorClass{
	{ErrMissingOrg, "MISSING_ORGANIZATION", ExitUsage},
	{job.ErrJobNotFound, "JOB_NOT_FOUND", ExitNotFound},
	{application.ErrJobNotFound, "JOB_NOT_FOUND", ExitNotFound},
	{application.ErrApplicationNotFound, "APPLICATION_NOT_FOUND", ExitNotFound},
	{models.ErrNotFound, "NOT_FOUND", ExitNotFound},
	{pipeline.ErrUnknownStage, "UNKNOWN_STAGE", ExitValidation},
	{job.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
	{job.ErrTitleTooLong, "VALIDATION_ERROR", ExitValidation},
	{application.ErrInvalidApplication, "VALIDATION_ERROR", ExitValidation},
	{application.ErrInvalidMove, "VALIDATION_ERROR", ExitUsage},
	{application.ErrAlreadyApplied, "ALREADY_APPLIED", ExitConflict},
	{job.ErrJobClosed, "JOB_CLOSED", ExitConflict},
	{application.ErrJobClosed, "JOB_CLOSED", ExitConflict},
	{models.ErrConflict, "CONFLICT", ExitConflict},
}

// Classify maps an error to its CLI error code and exit code
func Classify(err error) (string, int) {
	for _, c := range errorClasses {
		if errors.Is(err, c.err) {
			return c.code, c.exit
		}
	}
	return "ERROR", ExitError
}

// Fail reports err through the formatter and returns a *CommandError for main
func Fail(formatter *OutputFormatter, err error) error {
	code, exit := Classify(err)
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exit, Err: err}
}

// FailWithSuggestion is Fail with a hint for the user
func FailWithSuggestion(formatter *OutputFormatter, err error, suggestion string) error {
	code, exit := Classify(err)
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exit, Err: err}
}

// AddGlobalFlags registers the flags every subcommand reads
func AddGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.Bool("json", false, "Output in JSON format")
	pf.Bool("quiet", false, "Minimal output (IDs only)")
	pf.String("org", "", "Organization ID (defaults to $"+OrgEnv+")")
}

// Formatter builds the OutputFormatter from the global --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ResolveOrg returns the organization from --org, falling back to ETAPA_ORG
func ResolveOrg(cmd *cobra.Command) (types.OrgID, error) {
	org, _ := cmd.Flags().GetString("org")
	if org = strings.TrimSpace(org); org == "" {
		org = strings.TrimSpace(os.Getenv(OrgEnv))
	}
	if org == "" {
		return "", ErrMissingOrg
	}
	return types.OrgID(org), nil
}

// FormatAvailableStages lists column titles in board order
func FormatAvailableStages(columns []*models.PipelineColumn) string {
	titles := make([]string, 0, len(columns))
	for _, col := range columns {
		titles = append(titles, col.Title)
	}
	return strings.Join(titles, ", ")
}

// ReadDescription returns the description flag, or the contents of
// --description-file when given ("-" reads stdin)
func ReadDescription(cmd *cobra.Command) (string, error) {
	description, _ := cmd.Flags().GetString("description")
	path, _ := cmd.Flags().GetString("description-file")
	if path == "" {
		return description, nil
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read description from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read description file: %w", err)
	}
	return string(data), nil
}
