package domain

// Receiver Model
type Receiver struct {
	ID      uint    `gorm:"primaryKey" json:"id"`                       // Primary key
	Name    string  `gorm:"size:255;not null" json:"name"`              // Receiver name
	Balance float64 `gorm:"type:decimal(10,2);default:0" json:"balance"` // Accumulated balance, credited on confirmation only
}
