package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/testutil"
)

// isolate points config, .env and the database at a temp directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ETAPA_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("ETAPA_DB_PATH", filepath.Join(dir, "etapa.db"))
	t.Setenv("ETAPA_LOG_FILE", filepath.Join(dir, "etapa.log"))
	t.Setenv("ETAPA_DEFAULT_STAGES", "")
	t.Setenv(cli.OrgEnv, "org-1")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	var err error
	out := testutil.CaptureOutput(t, func() {
		err = root.ExecuteContext(context.Background())
	})
	return out, err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "job", "pipeline", "application"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"json", "quiet", "org"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCmd_EndToEnd(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
pipeline:
  default_stages: [New, Phone Screen, Onsite, Hired]
  position_base: 1
log:
  level: debug
`), 0o644))

	out, err := run(t, "job", "create", "--title", "Engineer", "--quiet")
	require.NoError(t, err)
	jobID := strings.TrimSpace(out)
	require.NotEmpty(t, jobID)

	out, err = run(t, "job", "publish", jobID)
	require.NoError(t, err)
	assert.Contains(t, out, "Published")

	out, err = run(t, "pipeline", "ensure", "--job", jobID)
	require.NoError(t, err)
	assert.Equal(t, "Pipeline: New, Phone Screen, Onsite, Hired\n", out)

	out, err = run(t, "application", "apply", jobID, "--email", "ada@example.com", "--quiet")
	require.NoError(t, err)
	appID := strings.TrimSpace(out)

	out, err = run(t, "application", "move", appID, "onsite", "--json")
	require.NoError(t, err)
	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, "Onsite", data["stage"])

	assert.FileExists(t, filepath.Join(dir, "etapa.log"))
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
pipeline:
  default_stages: [Applied, applied]
`), 0o644))

	_, err := run(t, "job", "list", "--json")
	var cmdErr *cli.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, cli.ExitError, cmdErr.Code)
}
