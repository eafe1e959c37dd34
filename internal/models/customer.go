package models

import "github.com/google/uuid"

// Customer is read-only in this service; rows are seeded elsewhere.
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"index" json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `gorm:"column:image_url" json:"image_url"`
}
