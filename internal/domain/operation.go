package domain

import "time"

// Operation status values. An operation starts pending and moves to
// confirmed exactly once; there is no cancelled or failed state.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Operation Model
type Operation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`              // Foreign key to Receiver
	GrossValue float64   `gorm:"type:decimal(10,2);not null" json:"gross_value"` // Advanced gross amount
	Fee        float64   `gorm:"type:decimal(10,2);not null" json:"fee"`         // 3% advance fee, fixed at creation
	NetValue   float64   `gorm:"type:decimal(10,2);not null" json:"net_value"`   // Gross minus fee, credited on confirmation
	Status     string    `gorm:"size:50;index;default:pending" json:"status"`    // pending or confirmed
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                        // Timestamp of creation
}
