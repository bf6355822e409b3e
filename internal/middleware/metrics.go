package middleware

import (
	"strconv"
	"time"

	"anoa.com/coursecms/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics observes request latency labelled by route template, so /api/courses/1/
// and /api/courses/2/ share a series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(
			path,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
