package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/etapa/internal/app"
	etapacli "github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The command is mounted under a bare root carrying the global flags, and the
// app is injected through the context so GetCLIFromContext uses the test database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{Use: "etapa"}
	etapacli.AddGlobalFlags(root)
	root.AddCommand(cmd)
	return testutil.ExecuteCommand(t, etapacli.WithApp(ctx, testApp), root, append([]string{cmd.Name()}, args...)...)
}
