package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
)

// HTTPObserver records request counts and latency
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// Metrics reports every request to observer, labelled by route template
func Metrics(observer HTTPObserver, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), timeProvider.Since(start))
	}
}
