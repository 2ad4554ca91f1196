package app

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/events"
	"github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/services/job"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
	"github.com/thenoetrevino/etapa/internal/testutil"
	"github.com/thenoetrevino/etapa/internal/types"
)

type countingPublisher struct {
	mu sync.Mutex
	n  int
}

func (p *countingPublisher) SendEvent(events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.n++
	return nil
}

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(db)
	require.NotNil(t, app)

	assert.NotNil(t, app.PipelineService)
	assert.NotNil(t, app.JobService)
	assert.NotNil(t, app.ApplicationService)
	assert.Same(t, db, app.DB())
	assert.NotNil(t, app.Logger())
	assert.Equal(t, pipeline.DefaultConfig(), app.PipelineService.Config())
}

func TestNew_Options(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pub := &countingPublisher{}
	stages := pipeline.Config{Stages: []string{"Inbox", "Offer"}, PositionBase: 1}

	app := New(db, WithEventPublisher(pub), WithPipelineConfig(stages))
	ctx := context.Background()
	org := types.NewOrgID()

	created, err := app.JobService.CreateJob(ctx, job.CreateJobRequest{OrgID: org, Title: "Engineer"})
	require.NoError(t, err)
	_, err = app.JobService.PublishJob(ctx, org, created.ID)
	require.NoError(t, err)

	// Every service shares the same pipeline configuration
	_, err = app.ApplicationService.Apply(ctx, created.ID, application.ApplyRequest{Email: "a@b.com"})
	require.NoError(t, err)
	board, err := app.ApplicationService.GetBoard(ctx, org, created.ID)
	require.NoError(t, err)

	require.Len(t, board.Columns, 2)
	assert.Equal(t, "Inbox", board.Columns[0].Title)
	assert.Equal(t, 1, board.Columns[0].Position)
	assert.Equal(t, "Inbox", board.Applications[0].Stage)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Equal(t, 3, pub.n, "materialized, published, application created")
}

func TestClose(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := New(db)

	assert.NoError(t, app.Close())
	assert.Error(t, db.Ping())
}
