package service

import (
	"errors" // Sentinel error checks
	"fmt"    // Error wrapping
	"math"   // Float sanity checks
	"time"   // Timestamps for log fields

	"ledger_system/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// feeRate is the fixed advance fee of 3% deducted from the gross value
var feeRate = decimal.NewFromFloat(0.03)

// OperationService implements advance operation creation and confirmation
type OperationService struct {
	db *gorm.DB // Database handle
}

// NewOperationService creates an OperationService backed by db
func NewOperationService(db *gorm.DB) *OperationService {
	return &OperationService{db: db}
}

// SplitGross computes the advance fee and net value for a gross amount.
// The math runs in decimal space so fee + net equals gross exactly at
// cent precision.
func SplitGross(gross float64) (fee, net float64) {
	g := decimal.NewFromFloat(gross).Round(2) // Gross amount at cent precision
	f := g.Mul(feeRate).Round(2)              // 3% fee, rounded to cents
	n := g.Sub(f)                             // Net is the exact remainder
	return f.InexactFloat64(), n.InexactFloat64()
}

// Create validates the input, checks the receiver exists and inserts a
// pending operation with its derived fee and net value.
func (s *OperationService) Create(receiverID uint, grossValue float64) (*domain.Operation, error) {
	// Validate before touching the store
	if receiverID == 0 {
		return nil, fmt.Errorf("%w: receiver_id is required", ErrInvalidInput)
	}
	// gross_value must be a finite positive number
	if grossValue <= 0 || math.IsNaN(grossValue) || math.IsInf(grossValue, 0) {
		return nil, fmt.Errorf("%w: gross_value must be a positive number", ErrInvalidInput)
	}
	var receiver domain.Receiver // Receiver existence check
	// Receivers are never deleted, so a plain lookup before the insert is
	// safe outside the insert's own statement.
	if err := s.db.Select("id").First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: receiver %d", ErrNotFound, receiverID)
		}
		return nil, err
	}
	fee, net := SplitGross(grossValue) // Derive fee and net once, at creation
	operation := domain.Operation{
		ReceiverID: receiverID,           // Owning receiver
		GrossValue: grossValue,           // Advanced gross amount
		Fee:        fee,                  // 3% advance fee
		NetValue:   net,                  // Amount credited on confirmation
		Status:     domain.StatusPending, // Operations start pending
	}
	// Insert the operation
	if err := s.db.Create(&operation).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"receiver_id": receiverID,  // Owning receiver
			"gross_value": grossValue,  // Advanced gross amount
			"error":       err.Error(), // Error message
		}).Error("Failed to create operation") // Log failure
		return nil, err
	}
	return &operation, nil
}

// Get returns an operation by id
func (s *OperationService) Get(id uint) (*domain.Operation, error) {
	var operation domain.Operation // Operation struct to hold data
	// Fetch the operation by primary key
	if err := s.db.First(&operation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: operation %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &operation, nil
}

// Confirm transitions an operation from pending to confirmed and credits
// its net value to the receiver, as a single database transaction. A
// pending operation can be confirmed exactly once: the status update is a
// compare-and-set, so two concurrent confirmations of the same operation
// yield one success and one ErrAlreadyConfirmed, never a double credit.
func (s *OperationService) Confirm(id uint) (*domain.Operation, error) {
	var operation domain.Operation // Operation being confirmed
	// Atomic confirmation: commit on nil, rollback on any error
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Fetch the operation inside the transaction
		if err := tx.First(&operation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: operation %d", ErrNotFound, id)
			}
			return err
		}
		// Reject a second confirmation attempt
		if operation.Status == domain.StatusConfirmed {
			return fmt.Errorf("%w: operation %d", ErrAlreadyConfirmed, id)
		}
		// Compare-and-set on the pending status; the WHERE guard is what
		// keeps a concurrent confirmation from crediting twice.
		res := tx.Model(&domain.Operation{}).
			Where("id = ? AND status = ?", id, domain.StatusPending).
			Update("status", domain.StatusConfirmed)
		if res.Error != nil {
			return res.Error // Return error to rollback
		}
		// Zero rows means another transaction confirmed first
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: operation %d", ErrAlreadyConfirmed, id)
		}
		// Credit the receiver with an increment evaluated by the store,
		// safe under concurrent confirmations of other operations.
		if err := tx.Model(&domain.Receiver{}).
			Where("id = ?", operation.ReceiverID).
			Update("balance", gorm.Expr("balance + ?", operation.NetValue)).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	// Handle transaction result
	if err != nil {
		// Business-rule rejections are the caller's to handle; only store
		// failures are worth a server-side log entry.
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAlreadyConfirmed) {
			logrus.WithFields(logrus.Fields{
				"operation_id": id,          // Operation being confirmed
				"error":        err.Error(), // Error message
			}).Error("Confirmation failed") // Log confirmation failure
		}
		return nil, err
	}
	// Re-read so the caller sees the committed state
	if err := s.db.First(&operation, id).Error; err != nil {
		return nil, err
	}
	// Log successful confirmation
	logrus.WithFields(logrus.Fields{
		"operation_id": operation.ID,                    // Confirmed operation
		"receiver_id":  operation.ReceiverID,            // Credited receiver
		"net_value":    operation.NetValue,              // Credited amount
		"timestamp":    time.Now().Format(time.RFC3339), // Current timestamp
	}).Info("Operation confirmed") // Log confirmation success
	return &operation, nil
}
