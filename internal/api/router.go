package api

import (
	"net/http" // HTTP status codes
	"time"     // Server start time for uptime reporting

	"ledger_system/internal/middleware" // Request ID and logging middleware
	"ledger_system/internal/service"    // Core services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter builds the Gin engine with all routes and middleware wired
func NewRouter(database *gorm.DB, rdb *redis.Client) *gin.Engine {
	start := time.Now() // Uptime baseline for the health endpoint

	receivers := service.NewReceiverService(database)  // Receiver service
	operations := service.NewOperationService(database) // Operation service

	r := gin.New()                                                       // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger()) // Panic recovery, request IDs, access log

	r.GET("/", IndexHandler())           // API index endpoint
	r.GET("/health", HealthHandler(start)) // Health check endpoint

	// Receiver routes
	r.POST("/receivers", CreateReceiverHandler(receivers))       // Register receiver endpoint
	r.GET("/receivers", ListReceiversHandler(receivers))         // List receivers endpoint
	r.GET("/receivers/:id", GetReceiverHandler(receivers, rdb))  // Receiver detail endpoint

	// Operation routes
	r.POST("/operations", CreateOperationHandler(operations, rdb))              // Create operation endpoint
	r.GET("/operations/:id", GetOperationHandler(operations, rdb))              // Operation detail endpoint
	r.POST("/operations/:id/confirm", ConfirmOperationHandler(operations, rdb)) // Confirm operation endpoint

	// Unmatched routes get a JSON 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r
}
