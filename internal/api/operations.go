package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"ledger_system/internal/domain"  // Importing domain models
	"ledger_system/internal/service" // Core services
	"ledger_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// CreateOperationRequest represents an advance operation request
type CreateOperationRequest struct {
	ReceiverID uint    `json:"receiver_id" binding:"required"` // Owning receiver must be provided
	GrossValue float64 `json:"gross_value" binding:"required"` // Gross amount must be provided
}

// CreateOperationHandler creates a pending advance operation with its
// derived fee and net value
func CreateOperationHandler(svc *service.OperationService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOperationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "receiver_id and gross_value are required"})
			return
		}
		operation, err := svc.Create(req.ReceiverID, req.GrossValue) // Create the operation
		if err != nil {
			respondError(c, err) // Map the error kind to a status
			return
		}
		// Invalidate the receiver's cached history, it has a new entry
		_ = utils.DeleteCache(context.Background(), rdb, utils.ReceiverKey(operation.ReceiverID))
		c.JSON(http.StatusCreated, operation) // Return the new operation
	}
}

// GetOperationHandler returns a single operation, served from cache when
// fresh
func GetOperationHandler(svc *service.OperationService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "operation") // Parse the :id parameter
		if !ok {
			return
		}
		ctx := context.Background()        // Context for Redis operations
		cacheKey := utils.OperationKey(id) // Cache key for this operation
		var operation domain.Operation     // Operation struct to hold data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &operation) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, operation)
			return
		}
		// If not in cache, fetch from the database
		op, err := svc.Get(id)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, op, utils.CacheTTL) // Cache the operation
		c.JSON(http.StatusOK, op)                                   // Return the operation
	}
}

// ConfirmOperationHandler confirms a pending operation, crediting the
// receiver's balance with its net value
func ConfirmOperationHandler(svc *service.OperationService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "operation") // Parse the :id parameter
		if !ok {
			return
		}
		operation, err := svc.Confirm(id) // Run the confirmation transaction
		if err != nil {
			respondError(c, err) // Map the error kind to a status
			return
		}
		// Invalidate the cached operation and the receiver's cached
		// history, both changed by the confirmation
		_ = utils.DeleteCache(context.Background(), rdb,
			utils.OperationKey(operation.ID),
			utils.ReceiverKey(operation.ReceiverID),
		)
		// Return the confirmed operation
		c.JSON(http.StatusOK, gin.H{
			"id":          operation.ID,         // Operation id
			"receiver_id": operation.ReceiverID, // Credited receiver
			"gross_value": operation.GrossValue, // Advanced gross amount
			"fee":         operation.Fee,        // Advance fee
			"net_value":   operation.NetValue,   // Credited amount
			"status":      operation.Status,     // Now confirmed
			"created_at":  operation.CreatedAt,  // Timestamp of creation
			"message":     "operation confirmed successfully",
		})
	}
}
