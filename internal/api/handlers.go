package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/events"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/services/job"
	"github.com/thenoetrevino/etapa/internal/types"
)

// ssePingInterval keeps idle event streams open through proxies
const ssePingInterval = 25 * time.Second

type handlers struct {
	app    *app.App
	broker *events.Broker
}

// health is GET /api/health
func (h *handlers) health(c *gin.Context) {
	if err := h.app.DB().PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// metrics is GET /api/metrics
func (h *handlers) metrics(c *gin.Context) {
	if h.broker == nil {
		c.JSON(http.StatusOK, events.MetricsSnapshot{})
		return
	}
	c.JSON(http.StatusOK, h.broker.Metrics().Snapshot())
}

// createJob is POST /api/jobs
func (h *handlers) createJob(c *gin.Context) {
	var req job.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.OrgID = orgFrom(c)

	created, err := h.app.JobService.CreateJob(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listJobs is GET /api/jobs
func (h *handlers) listJobs(c *gin.Context) {
	jobs, err := h.app.JobService.ListJobs(c.Request.Context(), orgFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// getJob is GET /api/jobs/:jobId
func (h *handlers) getJob(c *gin.Context) {
	found, err := h.app.JobService.GetJob(c.Request.Context(), orgFrom(c), jobParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// publishJob is POST /api/jobs/:jobId/publish
func (h *handlers) publishJob(c *gin.Context) {
	published, err := h.app.JobService.PublishJob(c.Request.Context(), orgFrom(c), jobParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, published)
}

// closeJob is POST /api/jobs/:jobId/close
func (h *handlers) closeJob(c *gin.Context) {
	closed, err := h.app.JobService.CloseJob(c.Request.Context(), orgFrom(c), jobParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, closed)
}

// getPipeline is GET /api/jobs/:jobId/pipeline
func (h *handlers) getPipeline(c *gin.Context) {
	board, err := h.app.ApplicationService.GetBoard(c.Request.Context(), orgFrom(c), jobParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// getPipelineColumns is GET /api/jobs/:jobId/pipeline-columns
func (h *handlers) getPipelineColumns(c *gin.Context) {
	ctx := c.Request.Context()
	org, jobID := orgFrom(c), jobParam(c)

	if _, err := h.app.JobService.GetJob(ctx, org, jobID); err != nil {
		writeError(c, err)
		return
	}
	columns, err := h.app.PipelineService.GetColumns(ctx, jobID, org)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// getOrganizationColumns is GET /api/organization/pipeline-columns
func (h *handlers) getOrganizationColumns(c *gin.Context) {
	columns, err := h.app.PipelineService.EnsureScopePipeline(c.Request.Context(), models.OrgScope(orgFrom(c)))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// apply is POST /api/jobs/:jobId/apply
func (h *handlers) apply(c *gin.Context) {
	var req application.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.app.ApplicationService.Apply(c.Request.Context(), jobParam(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// moveJobCandidate is PATCH /api/job-candidates/:id/stage
func (h *handlers) moveJobCandidate(c *gin.Context) {
	var req application.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.OrgID = orgFrom(c)

	moved, err := h.app.ApplicationService.MoveJobCandidate(c.Request.Context(), types.ApplicationID(c.Param("id")), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, moved)
}

// streamEvents is GET /api/jobs/:jobId/events, a server-sent event stream
// of changes to one job's pipeline
func (h *handlers) streamEvents(c *gin.Context) {
	if h.broker == nil {
		writeError(c, errNoBroker)
		return
	}
	ctx := c.Request.Context()
	org, jobID := orgFrom(c), jobParam(c)

	if _, err := h.app.JobService.GetJob(ctx, org, jobID); err != nil {
		writeError(c, err)
		return
	}

	sub := h.broker.Subscribe(events.Filter{OrgID: org, JobID: jobID})
	defer h.broker.Unsubscribe(sub)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ping := time.NewTicker(ssePingInterval)
	defer ping.Stop()

	// Announce the stream so clients know the subscription is live
	c.SSEvent("ready", gin.H{"jobId": jobID})
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Type), ev)
			return true
		case <-ping.C:
			c.SSEvent(string(events.EventPing), gin.H{"time": time.Now().UTC()})
			return true
		}
	})
}
