package job

import (
	"github.com/spf13/cobra"
)

// JobCmd returns the job parent command
func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage job postings",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(PublishCmd())
	cmd.AddCommand(CloseCmd())

	return cmd
}
