package job

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/testutil"
	clitest "github.com/thenoetrevino/etapa/internal/testutil/cli"
	"github.com/thenoetrevino/etapa/internal/types"
)

const testOrg = "org-test"

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var cmdErr *cli.CommandError
	require.ErrorAs(t, err, &cmdErr)
	return cmdErr.Code
}

func TestCreateJob(t *testing.T) {
	t.Setenv(cli.OrgEnv, "")
	db, app := clitest.SetupCLITest(t)

	t.Run("quiet prints the ID", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, JobCmd(),
			[]string{"create", "--org", testOrg, "--title", "Platform Engineer", "--quiet"})
		require.NoError(t, err)

		id := strings.TrimSpace(output)
		var title, status string
		err = db.QueryRowContext(context.Background(),
			"SELECT title, status FROM jobs WHERE id = ?", id).Scan(&title, &status)
		require.NoError(t, err)
		assert.Equal(t, "Platform Engineer", title)
		assert.Equal(t, "draft", status)
	})

	t.Run("json output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, JobCmd(),
			[]string{"create", "--org", testOrg, "--title", "SRE", "--location", "Remote", "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "SRE", data["title"])
		assert.Equal(t, "Remote", data["location"])
	})

	t.Run("org from environment", func(t *testing.T) {
		t.Setenv(cli.OrgEnv, testOrg)
		_, err := clitest.ExecuteCLICommand(t, app, JobCmd(),
			[]string{"create", "--title", "Designer", "--quiet"})
		require.NoError(t, err)
	})

	t.Run("missing organization", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, JobCmd(),
			[]string{"create", "--title", "Designer", "--json"})
		assert.Equal(t, cli.ExitUsage, exitCode(t, err))
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, JobCmd(),
			[]string{"create", "--org", testOrg, "--title", "  ", "--json"})
		assert.Equal(t, cli.ExitValidation, exitCode(t, err))
	})
}

func TestListJobs(t *testing.T) {
	t.Setenv(cli.OrgEnv, "")
	db, app := clitest.SetupCLITest(t)
	first := clitest.CreateTestJob(t, db, testOrg, "One", "draft")
	second := clitest.CreateTestJob(t, db, testOrg, "Two", "published")
	clitest.CreateTestJob(t, db, "other-org", "Hidden", "draft")

	output, err := clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"list", "--org", testOrg, "--quiet"})
	require.NoError(t, err)

	ids := strings.Fields(output)
	assert.ElementsMatch(t, []string{string(first), string(second)}, ids)

	output, err = clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"list", "--org", testOrg})
	require.NoError(t, err)
	assert.Contains(t, output, "One")
	assert.Contains(t, output, "Two")
	assert.NotContains(t, output, "Hidden")
}

func TestShowJob(t *testing.T) {
	t.Setenv(cli.OrgEnv, "")
	db, app := clitest.SetupCLITest(t)
	jobID := clitest.CreateTestJob(t, db, testOrg, "Backend Engineer", "draft")

	output, err := clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"show", string(jobID), "--org", testOrg})
	require.NoError(t, err)
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "draft")

	output, err = clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"show", string(jobID), "--org", testOrg, "--json"})
	require.NoError(t, err)
	assert.Equal(t, string(jobID), testutil.ParseJSON(t, output)["data"].(map[string]any)["id"])

	_, err = clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"show", string(jobID), "--org", "other-org", "--json"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
}

func TestPublishJob(t *testing.T) {
	t.Setenv(cli.OrgEnv, "")
	db, app := clitest.SetupCLITest(t)
	jobID := clitest.CreateTestJob(t, db, testOrg, "Engineer", "draft")

	output, err := clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"publish", string(jobID), "--org", testOrg})
	require.NoError(t, err)
	assert.Contains(t, output, "Published job 'Engineer'")
	assert.Equal(t, 5, testutil.CountColumns(t, db, testOrg, jobID))

	// Idempotent
	_, err = clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"publish", string(jobID), "--org", testOrg, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, 5, testutil.CountColumns(t, db, testOrg, jobID))
}

func TestCloseJob(t *testing.T) {
	t.Setenv(cli.OrgEnv, "")
	db, app := clitest.SetupCLITest(t)
	jobID := clitest.CreateTestJob(t, db, testOrg, "Engineer", "published")

	output, err := clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"close", string(jobID), "--org", testOrg, "--json"})
	require.NoError(t, err)
	assert.Equal(t, "closed", testutil.ParseJSON(t, output)["data"].(map[string]any)["status"])

	_, err = clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"publish", string(jobID), "--org", testOrg, "--json"})
	assert.Equal(t, cli.ExitConflict, exitCode(t, err))

	_, err = clitest.ExecuteCLICommand(t, app, JobCmd(), []string{"close", string(types.NewJobID()), "--org", testOrg, "--json"})
	assert.Equal(t, cli.ExitNotFound, exitCode(t, err))
}
