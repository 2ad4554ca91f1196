package api

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/etapa/internal/types"
)

const (
	orgHeader = "X-Organization-ID"
	orgKey    = "orgID"
)

// requestLogger logs one line per request through slog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= 500 {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP())
	}
}

// requireOrg resolves the calling organization from the X-Organization-ID header.
// The orgId query parameter is accepted for clients that cannot set headers (EventSource).
func requireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		org := strings.TrimSpace(c.GetHeader(orgHeader))
		if org == "" {
			org = strings.TrimSpace(c.Query("orgId"))
		}
		if org == "" {
			writeError(c, errMissingOrg)
			return
		}
		c.Set(orgKey, types.OrgID(org))
		c.Next()
	}
}

// orgFrom returns the organization set by requireOrg
func orgFrom(c *gin.Context) types.OrgID {
	org, _ := c.Get(orgKey)
	id, _ := org.(types.OrgID)
	return id
}

func jobParam(c *gin.Context) types.JobID {
	return types.JobID(c.Param("jobId"))
}
