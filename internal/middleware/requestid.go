package middleware

import (
	"time" // Request latency measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ID generation
	"github.com/sirupsen/logrus" // Logging library
)

// RequestID tags every request with an identifier, honoring one supplied
// by the caller, and echoes it back in the response headers
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID") // Reuse the caller's ID if present
		if id == "" {
			id = uuid.NewString() // Otherwise generate one
		}
		c.Set("requestID", id)                   // Store the ID in context for handlers
		c.Writer.Header().Set("X-Request-ID", id) // Echo the ID back to the caller
		c.Next()                                 // Proceed to the next handler
	}
}

// RequestLogger writes one structured log line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start time
		c.Next()            // Run the handler chain
		// Log the completed request
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"),       // Request identifier
			"method":     c.Request.Method,               // HTTP method
			"path":       c.Request.URL.Path,             // Request path
			"status":     c.Writer.Status(),              // Response status code
			"latency_ms": time.Since(start).Milliseconds(), // Handling time
		}).Info("Request handled")
	}
}
