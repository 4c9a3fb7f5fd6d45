package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/observability"
)

// RequestLogger logs each request and feeds the request instruments.
func RequestLogger(log logger.Logger, obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		if obs != nil {
			obs.RecordRequest(c.Request.Context(), route, strconv.Itoa(status))
			obs.RecordRequestDuration(c.Request.Context(), elapsed, route)
		}

		fields := map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"duration": elapsed.String(),
			"clientIp": c.ClientIP(),
		}
		if status >= 500 {
			log.Error("request completed", fields)
			return
		}
		log.Info("request completed", fields)
	}
}
