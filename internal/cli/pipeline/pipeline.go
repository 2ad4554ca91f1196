package pipeline

import (
	"github.com/spf13/cobra"
)

// PipelineCmd returns the pipeline parent command
func PipelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Inspect and materialize hiring pipelines",
	}

	cmd.AddCommand(EnsureCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
