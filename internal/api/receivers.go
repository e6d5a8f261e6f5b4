package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Timestamps in responses

	"ledger_system/internal/service" // Core services
	"ledger_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// CreateReceiverRequest represents a receiver registration request
type CreateReceiverRequest struct {
	Name string `json:"name" binding:"required"` // Receiver name must be provided
}

// operationEntry is one row of a receiver's history. The receiver id is
// implicit and omitted.
type operationEntry struct {
	ID         uint      `json:"id"`          // Operation id
	GrossValue float64   `json:"gross_value"` // Advanced gross amount
	Fee        float64   `json:"fee"`         // Advance fee
	NetValue   float64   `json:"net_value"`   // Credited amount
	Status     string    `json:"status"`      // pending or confirmed
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of creation
}

// receiverDetail is the receiver plus its full operation history
type receiverDetail struct {
	ID         uint             `json:"id"`         // Receiver id
	Name       string           `json:"name"`       // Receiver name
	Balance    float64          `json:"balance"`    // Accumulated balance
	Operations []operationEntry `json:"operations"` // History, newest first
}

// CreateReceiverHandler registers a new receiver
func CreateReceiverHandler(svc *service.ReceiverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReceiverRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		receiver, err := svc.Create(req.Name) // Create the receiver
		if err != nil {
			respondError(c, err) // Map the error kind to a status
			return
		}
		c.JSON(http.StatusCreated, receiver) // Return the new receiver
	}
}

// ListReceiversHandler returns all registered receivers
func ListReceiversHandler(svc *service.ReceiverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		receivers, err := svc.List() // Fetch all receivers
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, receivers) // Return the list
	}
}

// GetReceiverHandler returns a receiver and its operation history,
// newest first, served from cache when fresh
func GetReceiverHandler(svc *service.ReceiverService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "receiver") // Parse the :id parameter
		if !ok {
			return
		}
		ctx := context.Background()     // Context for Redis operations
		cacheKey := utils.ReceiverKey(id) // Cache key for this receiver
		var detail receiverDetail       // Response struct
		found, err := utils.GetCache(ctx, rdb, cacheKey, &detail) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, detail)
			return
		}
		// If not in cache, fetch from the database
		receiver, operations, err := svc.GetWithHistory(id)
		if err != nil {
			respondError(c, err)
			return
		}
		detail = receiverDetail{
			ID:         receiver.ID,                               // Receiver id
			Name:       receiver.Name,                             // Receiver name
			Balance:    receiver.Balance,                          // Accumulated balance
			Operations: make([]operationEntry, 0, len(operations)), // History entries
		}
		// Shape the history entries, dropping the implicit receiver id
		for _, op := range operations {
			detail.Operations = append(detail.Operations, operationEntry{
				ID:         op.ID,         // Operation id
				GrossValue: op.GrossValue, // Advanced gross amount
				Fee:        op.Fee,        // Advance fee
				NetValue:   op.NetValue,   // Credited amount
				Status:     op.Status,     // pending or confirmed
				CreatedAt:  op.CreatedAt,  // Timestamp of creation
			})
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, detail, utils.CacheTTL) // Cache the response
		c.JSON(http.StatusOK, detail)                                  // Return receiver and history
	}
}
