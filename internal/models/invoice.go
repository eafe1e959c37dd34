package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice statuses. No other values are ever stored.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice amounts are stored in cents and converted to dollars
// only at the read boundary.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	Amount     int64          `gorm:"not null" json:"amount"`
	Status     string         `gorm:"index" json:"status"`
	Date       datatypes.Date `gorm:"index" json:"-"`
}
