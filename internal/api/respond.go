package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"ledger_system/internal/service" // Core services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// parseID parses the :id path parameter. A value that cannot be an id
// cannot reference an existing entity, so it maps to not-found rather
// than bad-request.
func parseID(c *gin.Context, entity string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return 0, false
	}
	return uint(v), true
}

// respondError maps a service error kind to an HTTP status. Internal
// failures are logged server-side and never leak store detail to the
// client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Malformed input
	case errors.Is(err, service.ErrAlreadyConfirmed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Business-rule conflict
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()}) // Missing entity
	default:
		// Log the error with request context
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"), // Request identifier
			"method":     c.Request.Method,         // HTTP method
			"path":       c.Request.URL.Path,       // Request path
			"error":      err.Error(),              // Error message
		}).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
