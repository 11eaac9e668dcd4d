package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// slowThreshold marks requests worth calling out in the log. Everything in
// this API is a single query or a file write, so 200ms means trouble.
const slowThreshold = 200 * time.Millisecond

// PerformanceLogger logs method, path, status and latency for every request
// and flags the ones over slowThreshold.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), latency)

		if latency > slowThreshold {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
