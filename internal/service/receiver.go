package service

import (
	"errors"  // Sentinel error checks
	"fmt"     // Error wrapping
	"strings" // String manipulation

	"ledger_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ReceiverService implements receiver registration and lookup
type ReceiverService struct {
	db *gorm.DB // Database handle
}

// NewReceiverService creates a ReceiverService backed by db
func NewReceiverService(db *gorm.DB) *ReceiverService {
	return &ReceiverService{db: db}
}

// Create registers a new receiver with a zero balance
func (s *ReceiverService) Create(name string) (*domain.Receiver, error) {
	name = strings.TrimSpace(name) // Normalize whitespace-only names to empty
	// Validate before touching the store
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	receiver := domain.Receiver{Name: name, Balance: 0} // New receiver starts with zero balance
	// Attempt to create the receiver in the database
	if err := s.db.Create(&receiver).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"name":  name,        // Receiver name
			"error": err.Error(), // Error message
		}).Error("Failed to create receiver") // Log failure
		return nil, err
	}
	return &receiver, nil
}

// List returns all registered receivers
func (s *ReceiverService) List() ([]domain.Receiver, error) {
	var receivers []domain.Receiver // Slice to hold receivers
	// Fetch all receivers
	if err := s.db.Find(&receivers).Error; err != nil {
		return nil, err
	}
	return receivers, nil
}

// GetWithHistory returns a receiver and its operations, most recent first.
// The id tie-break keeps the ordering deterministic for operations created
// within the same timestamp.
func (s *ReceiverService) GetWithHistory(id uint) (*domain.Receiver, []domain.Operation, error) {
	var receiver domain.Receiver // Receiver struct to hold data
	// Fetch the receiver by primary key
	if err := s.db.First(&receiver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: receiver %d", ErrNotFound, id)
		}
		return nil, nil, err
	}
	var operations []domain.Operation // Slice to hold the operation history
	// Fetch the receiver's operations, newest first
	if err := s.db.Where("receiver_id = ?", receiver.ID).
		Order("created_at DESC, id DESC").
		Find(&operations).Error; err != nil {
		return nil, nil, err
	}
	return &receiver, operations, nil
}
