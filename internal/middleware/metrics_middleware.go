package middleware

import (
	"chatapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts every request that reaches the group it is attached to.
func MetricsMiddleware(requests *metrics.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requests != nil {
			requests.Inc()
		}
		c.Next()
	}
}
