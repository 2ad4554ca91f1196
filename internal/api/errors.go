package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/application"
	"github.com/thenoetrevino/etapa/internal/services/job"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
)

// errMissingOrg is returned when a tenant-scoped route has no organization
var errMissingOrg = errors.New("missing " + orgHeader + " header")

// errNoBroker is returned by the event stream when live updates are disabled
var errNoBroker = errors.New("live updates are not enabled")

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorMapping pairs a domain error with its HTTP status and machine-readable code
type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order with errors.Is; the first match wins
var errorMappings = []errorMapping{
	{errMissingOrg, http.StatusBadRequest, "missing_organization"},
	{job.ErrEmptyTitle, http.StatusBadRequest, "validation_failed"},
	{job.ErrTitleTooLong, http.StatusBadRequest, "validation_failed"},
	{job.ErrInvalidJobID, http.StatusBadRequest, "invalid_id"},
	{job.ErrInvalidOrgID, http.StatusBadRequest, "invalid_id"},
	{pipeline.ErrInvalidJobID, http.StatusBadRequest, "invalid_id"},
	{pipeline.ErrInvalidOrgID, http.StatusBadRequest, "invalid_id"},
	{pipeline.ErrUnknownStage, http.StatusBadRequest, "unknown_stage"},
	{application.ErrInvalidApplication, http.StatusBadRequest, "validation_failed"},
	{application.ErrInvalidMove, http.StatusBadRequest, "validation_failed"},
	{application.ErrInvalidApplicationID, http.StatusBadRequest, "invalid_id"},
	{application.ErrInvalidJobID, http.StatusBadRequest, "invalid_id"},
	{application.ErrInvalidOrgID, http.StatusBadRequest, "invalid_id"},

	{job.ErrJobNotFound, http.StatusNotFound, "job_not_found"},
	{application.ErrJobNotFound, http.StatusNotFound, "job_not_found"},
	{application.ErrApplicationNotFound, http.StatusNotFound, "application_not_found"},
	{models.ErrNotFound, http.StatusNotFound, "not_found"},

	{application.ErrAlreadyApplied, http.StatusConflict, "already_applied"},
	{models.ErrConflict, http.StatusConflict, "conflict"},

	{job.ErrJobClosed, http.StatusUnprocessableEntity, "job_closed"},
	{application.ErrJobClosed, http.StatusUnprocessableEntity, "job_closed"},

	{errNoBroker, http.StatusServiceUnavailable, "unavailable"},
}

// classify returns the status and code for err
func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// writeError aborts the request with the mapped status.
// Internal errors are logged and their details withheld from the client.
func writeError(c *gin.Context, err error) {
	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err)
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// badRequest reports a malformed request body
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: errorDetail{
		Code:    "invalid_json",
		Message: "Invalid JSON format: " + err.Error(),
	}})
}
