package api

import (
	"net/http" // HTTP status codes
	"time"     // Uptime and timestamps

	"github.com/gin-gonic/gin" // Gin web framework
)

// IndexHandler describes the API surface
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Advance Payment Ledger API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"receivers": gin.H{
					"POST /receivers":    "Register a new receiver",
					"GET /receivers":     "List all receivers",
					"GET /receivers/:id": "Receiver details and operation history",
				},
				"operations": gin.H{
					"POST /operations":             "Create a new advance operation",
					"GET /operations/:id":          "Operation details",
					"POST /operations/:id/confirm": "Confirm an operation and credit the receiver",
				},
			},
		})
	}
}

// HealthHandler reports liveness for load balancers and containers
func HealthHandler(start time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",                       // Liveness status
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
			"uptime":    time.Since(start).Seconds(),     // Seconds since startup
		})
	}
}
