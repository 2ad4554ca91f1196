package application

import (
	"github.com/spf13/cobra"
)

// ApplicationCmd returns the application parent command
func ApplicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "application",
		Aliases: []string{"app"},
		Short:   "Manage applications to jobs",
	}

	cmd.AddCommand(ApplyCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}
