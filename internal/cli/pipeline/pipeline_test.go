package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/cli"
	appservice "github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/testutil"
	clitest "github.com/thenoetrevino/etapa/internal/testutil/cli"
)

const testOrg = "org-test"

func TestEnsurePipeline_Job(t *testing.T) {
	t.Setenv(cli.OrgEnv, "")
	db, app := clitest.SetupCLITest(t)
	jobID := clitest.CreateTestJob(t, db, testOrg, "Engineer", "draft")

	output, err := clitest.ExecuteCLICommand(t, app, PipelineCmd(),
		[]string{"ensure", "--org", testOrg, "--job", string(jobID)})
	require.NoError(t, err)
	assert.Equal(t, "Pipeline: Applied, Screen, Interview, Offer, Hired\n", output)

	output, err = clitest.ExecuteCLICommand(t, app, PipelineCmd(),
		[]string{"ensure", "--org", testOrg, "--job", string(jobID), "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(output), 5)
	assert.Equal(t, 5, testutil.CountColumns(t, db, testOrg, jobID))
}

func TestEnsurePipeline_OrgWide(t *testing.T) {
	t.Setenv(cli.OrgEnv, testOrg)
	db, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, PipelineCmd(), []string{"ensure", "--org-wide", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	columns := result["data"].([]any)
	require.Len(t, columns, 5)
	assert.Nil(t, columns[0].(map[string]any)["jobId"])
	assert.Equal(t, 5, testutil.CountColumns(t, db, testOrg, ""))
}

func TestEnsurePipeline_Errors(t *testing.T) {
	t.Setenv(cli.OrgEnv, testOrg)
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, PipelineCmd(), []string{"ensure", "--job", "missing", "--json"})
	var cmdErr *cli.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, cli.ExitNotFound, cmdErr.Code)

	// Exactly one of --job and --org-wide
	_, err = clitest.ExecuteCLICommand(t, app, PipelineCmd(), []string{"ensure"})
	assert.Error(t, err)
}

func TestShowBoard(t *testing.T) {
	t.Setenv(cli.OrgEnv, testOrg)
	db, app := clitest.SetupCLITest(t)
	jobID := clitest.CreateTestJob(t, db, testOrg, "Engineer", "published")

	result, err := app.ApplicationService.Apply(context.Background(), jobID, appservice.ApplyRequest{
		Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace",
	})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, app, PipelineCmd(), []string{"show", string(jobID)})
	require.NoError(t, err)
	assert.Contains(t, output, "Applied (1)")
	assert.Contains(t, output, "Hired (0)")
	assert.Contains(t, output, "Ada Lovelace")

	output, err = clitest.ExecuteCLICommand(t, app, PipelineCmd(), []string{"show", string(jobID), "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, string(result.ApplicationID)+"\n", output)
}
